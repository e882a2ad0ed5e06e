package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/models"
)

type SupportService struct {
	supportRepo models.SupportRepo
}

func NewSupportService(supportRepo models.SupportRepo) *SupportService {
	return &SupportService{
		supportRepo: supportRepo,
	}
}

func (ss *SupportService) CreateSupportTicket(ctx context.Context, st *models.SupportTicket, userId uuid.UUID) (*models.SupportTicket, error) {
	if userId == uuid.Nil {
		return nil, validationError("invalid user ID")
	}
	if err := models.Validate.Struct(st); err != nil {
		return nil, validationError("invalid support ticket data provided: %v", err)
	}

	st.UserId = userId
	st.Status = models.SupportOpen
	st.Response = ""
	return ss.supportRepo.CreateSupportTicket(ctx, st)
}

func (ss *SupportService) GetSupportTicket(ctx context.Context, id uuid.UUID) (*models.SupportTicket, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid support ticket ID")
	}
	return ss.supportRepo.GetSupportTicket(ctx, id)
}

// ListSupportTickets with uuid.Nil lists every ticket (admin view).
func (ss *SupportService) ListSupportTickets(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*models.SupportTicket, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, validationError("invalid offset or limit")
	}
	return ss.supportRepo.ListSupportTickets(ctx, userId, offset, limit)
}

func (ss *SupportService) UpdateSupportTicket(ctx context.Context, id uuid.UUID, input *models.UpdateSupportTicketInput) (*models.SupportTicket, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid support ticket ID")
	}

	updates := make(map[string]interface{})
	if input.Status != nil {
		switch *input.Status {
		case models.SupportOpen, models.SupportResolved, models.SupportClosed:
			updates["status"] = *input.Status
		default:
			return nil, validationError("unsupported status: %s", *input.Status)
		}
	}
	if input.Response != nil {
		updates["response"] = *input.Response
	}
	if len(updates) == 0 {
		return nil, validationError("no updatable fields provided")
	}
	updates["updated_at"] = time.Now()

	return ss.supportRepo.UpdateSupportTicket(ctx, id, updates)
}

func (ss *SupportService) DeleteSupportTicket(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return validationError("invalid support ticket ID")
	}
	return ss.supportRepo.DeleteSupportTicket(ctx, id)
}
