package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentsRepo interface {
	CreatePayment(ctx context.Context, payment *Payment) (*Payment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error)
	GetPaymentByTransactionID(ctx context.Context, txnId string) (*Payment, error)
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
}

func (r *Repo) CreatePayment(ctx context.Context, payment *Payment) (*Payment, error) {
	if err := r.db.WithContext(ctx).Create(payment).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment: %v", err)
	}
	return payment, nil
}

func (r *Repo) GetPayment(ctx context.Context, id uuid.UUID) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %v", err)
	}
	return &payment, nil
}

func (r *Repo) GetPaymentByTransactionID(ctx context.Context, txnId string) (*Payment, error) {
	var payment Payment
	err := r.db.WithContext(ctx).First(&payment, "transaction_id = ?", txnId).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment by transaction: %v", err)
	}
	return &payment, nil
}

func (r *Repo) SetPaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error {
	res := r.db.WithContext(ctx).Model(&Payment{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment status: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
