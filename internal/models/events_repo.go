package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventsRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	ListEvents(ctx context.Context, filter EventFilter, offset, limit int) ([]*Event, int, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type EventFilter struct {
	VenueId  uuid.UUID
	Category string
}

// CreateEvent inserts the event together with any inline ticket types in one
// transaction, so an event never appears without its admission categories.
func (r *Repo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(event).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %v", err)
	}
	return r.GetEvent(ctx, event.ID)
}

func (r *Repo) ListEvents(ctx context.Context, filter EventFilter, offset, limit int) ([]*Event, int, error) {
	q := r.db.WithContext(ctx).Model(&Event{})
	if filter.VenueId != uuid.Nil {
		q = q.Where("venue_id = ?", filter.VenueId)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %v", err)
	}

	var events []*Event
	err := q.Preload("TicketTypes").
		Order("start_time ASC").
		Offset(offset).Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list events: %v", err)
	}
	return events, int(total), nil
}

func (r *Repo) GetEvent(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).
		Preload("TicketTypes").
		Preload("Venue").
		First(&event, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %v", err)
	}
	return &event, nil
}

func (r *Repo) UpdateEvent(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*Event, error) {
	res := r.db.WithContext(ctx).Model(&Event{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update event: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.GetEvent(ctx, id)
}

// DeleteEvent removes the event and its ticket types together. Events with
// issued tickets cannot be deleted; holders keep a resolvable ticket.
func (r *Repo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var issued int64
		if err := tx.Model(&Ticket{}).Where("event_id = ?", id).Count(&issued).Error; err != nil {
			return fmt.Errorf("failed to count event tickets: %v", err)
		}
		if issued > 0 {
			return ErrEventHasTickets
		}

		res := tx.Delete(&Event{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete event: %v", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		if err := tx.Delete(&TicketType{}, "event_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete event ticket types: %v", err)
		}
		return nil
	})
}
