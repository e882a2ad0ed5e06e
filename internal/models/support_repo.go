package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupportRepo interface {
	CreateSupportTicket(ctx context.Context, st *SupportTicket) (*SupportTicket, error)
	GetSupportTicket(ctx context.Context, id uuid.UUID) (*SupportTicket, error)
	ListSupportTickets(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*SupportTicket, int, error)
	UpdateSupportTicket(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*SupportTicket, error)
	DeleteSupportTicket(ctx context.Context, id uuid.UUID) error
}

func (r *Repo) CreateSupportTicket(ctx context.Context, st *SupportTicket) (*SupportTicket, error) {
	if err := r.db.WithContext(ctx).Create(st).Error; err != nil {
		return nil, fmt.Errorf("failed to create support ticket: %v", err)
	}
	return st, nil
}

func (r *Repo) GetSupportTicket(ctx context.Context, id uuid.UUID) (*SupportTicket, error) {
	var st SupportTicket
	err := r.db.WithContext(ctx).First(&st, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get support ticket: %v", err)
	}
	return &st, nil
}

// ListSupportTickets returns every ticket when userId is nil (admin view),
// otherwise only the user's own.
func (r *Repo) ListSupportTickets(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*SupportTicket, int, error) {
	q := r.db.WithContext(ctx).Model(&SupportTicket{})
	if userId != uuid.Nil {
		q = q.Where("user_id = ?", userId)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count support tickets: %v", err)
	}

	var tickets []*SupportTicket
	err := q.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list support tickets: %v", err)
	}
	return tickets, int(total), nil
}

func (r *Repo) UpdateSupportTicket(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*SupportTicket, error) {
	res := r.db.WithContext(ctx).Model(&SupportTicket{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update support ticket: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetSupportTicket(ctx, id)
}

func (r *Repo) DeleteSupportTicket(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&SupportTicket{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete support ticket: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
