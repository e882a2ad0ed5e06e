package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketTypesRepo interface {
	CreateTicketType(ctx context.Context, tt *TicketType) (*TicketType, error)
	GetTicketType(ctx context.Context, id uuid.UUID) (*TicketType, error)
	ListTicketTypesByEvent(ctx context.Context, eventId uuid.UUID) ([]*TicketType, error)
	UpdateTicketType(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*TicketType, error)
	DeleteTicketType(ctx context.Context, id uuid.UUID) error
}

func (r *Repo) CreateTicketType(ctx context.Context, tt *TicketType) (*TicketType, error) {
	if err := r.db.WithContext(ctx).Create(tt).Error; err != nil {
		return nil, fmt.Errorf("failed to create ticket type: %v", err)
	}
	return tt, nil
}

func (r *Repo) GetTicketType(ctx context.Context, id uuid.UUID) (*TicketType, error) {
	var tt TicketType
	err := r.db.WithContext(ctx).First(&tt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket type: %v", err)
	}
	return &tt, nil
}

func (r *Repo) ListTicketTypesByEvent(ctx context.Context, eventId uuid.UUID) ([]*TicketType, error) {
	var tts []*TicketType
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventId).
		Order("price ASC").
		Find(&tts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %v", err)
	}
	return tts, nil
}

func (r *Repo) UpdateTicketType(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*TicketType, error) {
	res := r.db.WithContext(ctx).Model(&TicketType{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update ticket type: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetTicketType(ctx, id)
}

// DeleteTicketType refuses to remove a type that has sold units; tickets
// already minted must keep a valid reference.
func (r *Repo) DeleteTicketType(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND quantity_sold = 0", id).
		Delete(&TicketType{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete ticket type: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetTicketType(ctx, id); err != nil {
			return err
		}
		return ErrTicketTypeInUse
	}
	return nil
}
