package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/models"
)

type AnalyticsService struct {
	analyticsRepo models.AnalyticsRepo
}

func NewAnalyticsService(analyticsRepo models.AnalyticsRepo) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
	}
}

func (as *AnalyticsService) EventSalesReport(ctx context.Context, eventId uuid.UUID) (*models.EventSales, error) {
	if eventId == uuid.Nil {
		return nil, validationError("invalid event ID")
	}
	return as.analyticsRepo.EventSalesReport(ctx, eventId)
}

func (as *AnalyticsService) Summary(ctx context.Context) (*models.PlatformSummary, error) {
	return as.analyticsRepo.Summary(ctx)
}
