package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/models"
)

type FavouriteService struct {
	favouritesRepo models.FavouritesRepo
}

func NewFavouriteService(favouritesRepo models.FavouritesRepo) *FavouriteService {
	return &FavouriteService{
		favouritesRepo: favouritesRepo,
	}
}

func (fs *FavouriteService) AddToFavourites(ctx context.Context, userId, eventId uuid.UUID) (*models.Favourite, error) {
	if userId == uuid.Nil || eventId == uuid.Nil {
		return nil, validationError("invalid user ID or event ID")
	}
	return fs.favouritesRepo.AddToFavourites(ctx, userId, eventId)
}

func (fs *FavouriteService) RemoveFromFavourites(ctx context.Context, userId, eventId uuid.UUID) error {
	if userId == uuid.Nil || eventId == uuid.Nil {
		return validationError("invalid user ID or event ID")
	}
	return fs.favouritesRepo.RemoveFromFavourites(ctx, userId, eventId)
}

func (fs *FavouriteService) GetFavouritesByUserID(ctx context.Context, userId uuid.UUID) ([]*models.Favourite, error) {
	if userId == uuid.Nil {
		return nil, validationError("invalid user ID")
	}
	return fs.favouritesRepo.GetFavouritesByUserID(ctx, userId)
}
