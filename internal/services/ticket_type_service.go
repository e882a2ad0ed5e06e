package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/models"
)

type TicketTypeService struct {
	ticketTypesRepo models.TicketTypesRepo
	eventsRepo      models.EventsRepo
}

func NewTicketTypeService(ticketTypesRepo models.TicketTypesRepo, eventsRepo models.EventsRepo) *TicketTypeService {
	return &TicketTypeService{
		ticketTypesRepo: ticketTypesRepo,
		eventsRepo:      eventsRepo,
	}
}

func (ts *TicketTypeService) CreateTicketType(ctx context.Context, eventId uuid.UUID, tt *models.TicketType) (*models.TicketType, error) {
	if eventId == uuid.Nil {
		return nil, validationError("invalid event ID")
	}
	if err := models.Validate.Struct(tt); err != nil {
		return nil, validationError("invalid ticket type data provided: %v", err)
	}
	if tt.Price.IsNegative() {
		return nil, validationError("price must not be negative")
	}

	event, err := ts.eventsRepo.GetEvent(ctx, eventId)
	if err != nil {
		return nil, err
	}

	tt.EventId = event.ID
	tt.QuantitySold = 0
	return ts.ticketTypesRepo.CreateTicketType(ctx, tt)
}

func (ts *TicketTypeService) GetTicketType(ctx context.Context, id uuid.UUID) (*models.TicketType, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid ticket type ID")
	}
	return ts.ticketTypesRepo.GetTicketType(ctx, id)
}

func (ts *TicketTypeService) ListTicketTypesByEvent(ctx context.Context, eventId uuid.UUID) ([]*models.TicketType, error) {
	if eventId == uuid.Nil {
		return nil, validationError("invalid event ID")
	}
	return ts.ticketTypesRepo.ListTicketTypesByEvent(ctx, eventId)
}

func (ts *TicketTypeService) UpdateTicketType(ctx context.Context, id uuid.UUID, input *models.UpdateTicketTypeInput) (*models.TicketType, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid ticket type ID")
	}

	updates := make(map[string]interface{})
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, validationError("price must not be negative")
		}
		updates["price"] = *input.Price
	}
	if input.QuantityAvailable != nil {
		if *input.QuantityAvailable < 0 {
			return nil, validationError("quantity_available must not be negative")
		}
		updates["quantity_available"] = *input.QuantityAvailable
	}
	if len(updates) == 0 {
		return nil, validationError("no updatable fields provided")
	}
	updates["updated_at"] = time.Now()

	return ts.ticketTypesRepo.UpdateTicketType(ctx, id, updates)
}

func (ts *TicketTypeService) DeleteTicketType(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return validationError("invalid ticket type ID")
	}
	return ts.ticketTypesRepo.DeleteTicketType(ctx, id)
}
