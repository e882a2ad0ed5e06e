package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/joshua-takyi/tixgate/internal/monitoring"
)

type TicketService struct {
	ticketsRepo models.TicketsRepo
}

func NewTicketService(ticketsRepo models.TicketsRepo) *TicketService {
	return &TicketService{
		ticketsRepo: ticketsRepo,
	}
}

func (ts *TicketService) GetTicket(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid ticket ID")
	}
	return ts.ticketsRepo.GetTicket(ctx, id)
}

func (ts *TicketService) GetTicketByCode(ctx context.Context, code string) (*models.Ticket, error) {
	if code == "" {
		return nil, validationError("ticket code is required")
	}
	return ts.ticketsRepo.GetTicketByCode(ctx, code)
}

func (ts *TicketService) ListTicketsByUser(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*models.Ticket, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, validationError("invalid offset or limit")
	}
	if userId == uuid.Nil {
		return nil, 0, validationError("invalid user ID")
	}
	return ts.ticketsRepo.ListTicketsByUser(ctx, userId, offset, limit)
}

// ScanTicket admits a ticket holder; a ticket can be scanned exactly once.
func (ts *TicketService) ScanTicket(ctx context.Context, id uuid.UUID, scannerId uuid.UUID) (*models.Ticket, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid ticket ID")
	}
	if scannerId == uuid.Nil {
		return nil, validationError("invalid scanner ID")
	}

	ticket, err := ts.ticketsRepo.ScanTicket(ctx, id, scannerId)
	if err != nil {
		return nil, err
	}
	monitoring.TrackTicketScanned()
	return ticket, nil
}
