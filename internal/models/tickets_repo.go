package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketsRepo interface {
	GetTicket(ctx context.Context, id uuid.UUID) (*Ticket, error)
	GetTicketByCode(ctx context.Context, code string) (*Ticket, error)
	ListTicketsByUser(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*Ticket, int, error)
	ScanTicket(ctx context.Context, id uuid.UUID, scannerId uuid.UUID) (*Ticket, error)
}

func (r *Repo) GetTicket(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("TicketType").
		First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %v", err)
	}
	return &ticket, nil
}

func (r *Repo) GetTicketByCode(ctx context.Context, code string) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("TicketType").
		First(&ticket, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket by code: %v", err)
	}
	return &ticket, nil
}

func (r *Repo) ListTicketsByUser(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*Ticket, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Ticket{}).Where("user_id = ?", userId).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %v", err)
	}

	var tickets []*Ticket
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Preload("Event").
		Preload("TicketType").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&tickets).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %v", err)
	}
	return tickets, int(total), nil
}

// ScanTicket marks a ticket used exactly once. The conditional update is the
// guard: a second scan affects zero rows and leaves scanned_at and
// scanned_by_user untouched.
func (r *Repo) ScanTicket(ctx context.Context, id uuid.UUID, scannerId uuid.UUID) (*Ticket, error) {
	now := time.Now()
	res := r.db.WithContext(ctx).Model(&Ticket{}).
		Where("id = ? AND scanned = ?", id, false).
		Updates(map[string]interface{}{
			"scanned":         true,
			"scanned_at":      now,
			"scanned_by_user": scannerId,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to scan ticket: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetTicket(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrTicketAlreadyScanned
	}
	return r.GetTicket(ctx, id)
}
