package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/connect"
	"github.com/joshua-takyi/tixgate/internal/helpers"
	"github.com/joshua-takyi/tixgate/internal/models"
)

type EventService struct {
	eventsRepo models.EventsRepo
	venuesRepo models.VenuesRepo
}

func NewEventService(eventsRepo models.EventsRepo, venuesRepo models.VenuesRepo) *EventService {
	return &EventService{
		eventsRepo: eventsRepo,
		venuesRepo: venuesRepo,
	}
}

// CreateEvent validates the event, uploads any poster images, and inserts the
// event with its inline ticket types. Uploaded images are removed again if
// the insert fails.
func (es *EventService) CreateEvent(ctx context.Context, event *models.Event, hostId uuid.UUID) (*models.Event, error) {
	if err := models.Validate.Struct(event); err != nil {
		return nil, validationError("invalid event data provided: %v", err)
	}
	if !event.EndTime.IsZero() && event.EndTime.Before(event.StartTime) {
		return nil, validationError("end_time must not be before start_time")
	}
	for i := range event.TicketTypes {
		tt := &event.TicketTypes[i]
		if tt.Name == "" {
			return nil, validationError("ticket type name is required")
		}
		if tt.Price.IsNegative() {
			return nil, validationError("ticket type price must not be negative")
		}
		if tt.QuantityAvailable < 0 {
			return nil, validationError("ticket type quantity must not be negative")
		}
		tt.QuantitySold = 0
	}

	// The venue must exist before anything is uploaded.
	if _, err := es.venuesRepo.ListVenueByID(ctx, event.VenueId); err != nil {
		return nil, err
	}

	now := time.Now()
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.HostId = hostId
	event.CreatedAt = now
	event.UpdatedAt = now

	var uploadedPublicIDs []string
	if len(event.Images) > 0 && connect.Cld != nil {
		uploadChan := make(chan struct {
			urls      []string
			publicIDs []string
		}, 1)
		errorChan := make(chan error, 1)

		go func() {
			urls, publicIDs, uploadErr := helpers.UploadImages(ctx, connect.Cld, event.Images, helpers.EventsFolder)
			if uploadErr != nil {
				errorChan <- uploadErr
				return
			}
			uploadChan <- struct {
				urls      []string
				publicIDs []string
			}{urls, publicIDs}
		}()

		select {
		case result := <-uploadChan:
			event.Images = result.urls
			uploadedPublicIDs = result.publicIDs
		case uploadErr := <-errorChan:
			return nil, fmt.Errorf("failed to upload images: %v", uploadErr)
		case <-time.After(30 * time.Second):
			return nil, fmt.Errorf("image upload timeout")
		}
	}

	createdEvent, err := es.eventsRepo.CreateEvent(ctx, event)
	if err != nil {
		if len(uploadedPublicIDs) > 0 {
			helpers.DeleteImages(ctx, connect.Cld, helpers.EventsFolder, uploadedPublicIDs)
		}
		return nil, err
	}

	return createdEvent, nil
}

func (es *EventService) ListEvents(ctx context.Context, filter models.EventFilter, offset, limit int) ([]*models.Event, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, validationError("invalid offset or limit")
	}
	return es.eventsRepo.ListEvents(ctx, filter, offset, limit)
}

func (es *EventService) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid event ID")
	}
	return es.eventsRepo.GetEvent(ctx, id)
}

func (es *EventService) UpdateEvent(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*models.Event, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid event ID")
	}

	allowed := map[string]bool{
		"title": true, "description": true, "category": true,
		"start_time": true, "end_time": true,
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

	return es.eventsRepo.UpdateEvent(ctx, id, updates)
}

func (es *EventService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return validationError("invalid event ID")
	}
	return es.eventsRepo.DeleteEvent(ctx, id)
}
