package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VenuesRepo interface {
	CreateVenue(ctx context.Context, venue *Venue) (*Venue, error)
	ListVenues(ctx context.Context, offset, limit int) ([]*Venue, int, error)
	ListVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	ListVenuesByHost(ctx context.Context, hostId uuid.UUID, offset, limit int) ([]*Venue, int, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*Venue, error)
	DeleteVenue(ctx context.Context, id uuid.UUID) error
}

func (r *Repo) CreateVenue(ctx context.Context, venue *Venue) (*Venue, error) {
	if err := r.db.WithContext(ctx).Create(venue).Error; err != nil {
		return nil, fmt.Errorf("failed to create venue: %v", err)
	}
	return venue, nil
}

func (r *Repo) ListVenues(ctx context.Context, offset, limit int) ([]*Venue, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Venue{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count venues: %v", err)
	}

	var venues []*Venue
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list venues: %v", err)
	}
	return venues, int(total), nil
}

func (r *Repo) ListVenueByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue: %v", err)
	}
	return &venue, nil
}

func (r *Repo) ListVenuesByHost(ctx context.Context, hostId uuid.UUID, offset, limit int) ([]*Venue, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Venue{}).Where("host_id = ?", hostId).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count host venues: %v", err)
	}

	var venues []*Venue
	err := r.db.WithContext(ctx).
		Where("host_id = ?", hostId).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list host venues: %v", err)
	}
	return venues, int(total), nil
}

func (r *Repo) UpdateVenue(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*Venue, error) {
	res := r.db.WithContext(ctx).Model(&Venue{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update venue: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.ListVenueByID(ctx, id)
}

func (r *Repo) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Venue{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete venue: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
