package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/models"
)

type VenuesService struct {
	venuesRepo models.VenuesRepo
}

func NewVenuesService(venuesRepo models.VenuesRepo) *VenuesService {
	return &VenuesService{
		venuesRepo: venuesRepo,
	}
}

func (vs *VenuesService) CreateVenue(ctx context.Context, venue *models.Venue, hostId uuid.UUID) (*models.Venue, error) {
	if err := models.Validate.Struct(venue); err != nil {
		return nil, validationError("invalid venue data provided: %v", err)
	}

	now := time.Now()
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	venue.HostId = hostId
	venue.CreatedAt = now
	venue.UpdatedAt = now

	return vs.venuesRepo.CreateVenue(ctx, venue)
}

func (vs *VenuesService) ListVenues(ctx context.Context, offset, limit int) ([]*models.Venue, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, validationError("invalid offset or limit")
	}

	return vs.venuesRepo.ListVenues(ctx, offset, limit)
}

func (vs *VenuesService) ListVenueByID(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid venue ID")
	}

	return vs.venuesRepo.ListVenueByID(ctx, id)
}

func (vs *VenuesService) ListVenuesByHost(ctx context.Context, hostId uuid.UUID, offset, limit int) ([]*models.Venue, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, validationError("invalid offset or limit")
	}
	if hostId == uuid.Nil {
		return nil, 0, validationError("invalid host ID")
	}

	return vs.venuesRepo.ListVenuesByHost(ctx, hostId, offset, limit)
}

func (vs *VenuesService) UpdateVenue(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Venue, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid venue ID")
	}

	allowed := map[string]bool{
		"name": true, "description": true, "address": true,
		"city": true, "country": true, "capacity": true,
	}
	updates := make(map[string]interface{})
	for key, value := range fields {
		if allowed[key] {
			updates[key] = value
		}
	}
	if len(updates) == 0 {
		return nil, validationError("no updatable fields provided")
	}
	updates["updated_at"] = time.Now()

	return vs.venuesRepo.UpdateVenue(ctx, id, updates)
}

func (vs *VenuesService) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return validationError("invalid venue ID")
	}

	return vs.venuesRepo.DeleteVenue(ctx, id)
}
