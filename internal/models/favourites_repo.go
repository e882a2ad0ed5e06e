package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type FavouritesRepo interface {
	AddToFavourites(ctx context.Context, userId, eventId uuid.UUID) (*Favourite, error)
	RemoveFromFavourites(ctx context.Context, userId, eventId uuid.UUID) error
	GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) ([]*Favourite, error)
}

func (r *Repo) AddToFavourites(ctx context.Context, userId, eventId uuid.UUID) (*Favourite, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Event{}).Where("id = ?", eventId).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check event: %v", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	fav := &Favourite{UserId: userId, EventId: eventId}
	// Saving the same event twice is a no-op.
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fav).Error
	if err != nil {
		return nil, fmt.Errorf("failed to add favourite: %v", err)
	}
	return fav, nil
}

func (r *Repo) RemoveFromFavourites(ctx context.Context, userId, eventId uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userId, eventId).
		Delete(&Favourite{})
	if res.Error != nil {
		return fmt.Errorf("failed to remove favourite: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repo) GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) ([]*Favourite, error) {
	var favs []*Favourite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Preload("Event").
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list favourites: %v", err)
	}
	return favs, nil
}
