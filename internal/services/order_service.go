package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/joshua-takyi/tixgate/internal/models"
	"github.com/joshua-takyi/tixgate/internal/monitoring"
)

type OrderService struct {
	ordersRepo models.OrdersRepo
}

func NewOrderService(ordersRepo models.OrdersRepo) *OrderService {
	return &OrderService{
		ordersRepo: ordersRepo,
	}
}

// CreateOrder runs the purchase workflow: validate the request, then let the
// repository reserve inventory, record the order and mint tickets in one
// transaction.
func (os *OrderService) CreateOrder(ctx context.Context, userId uuid.UUID, input *models.CreateOrderInput) (*models.Order, error) {
	if userId == uuid.Nil {
		return nil, validationError("invalid user ID")
	}
	if err := models.Validate.Struct(input); err != nil {
		monitoring.TrackOrderFailure("validation")
		return nil, validationError("invalid order data provided: %v", err)
	}

	order, err := os.ordersRepo.CreateOrder(ctx, userId, input.Items)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			monitoring.TrackOrderFailure("ticket_type_not_found")
		case errors.Is(err, models.ErrInsufficientInventory):
			monitoring.TrackOrderFailure("insufficient_inventory")
		default:
			monitoring.TrackOrderFailure("internal")
		}
		return nil, err
	}

	tickets := 0
	for _, item := range order.Items {
		tickets += item.Quantity
	}
	monitoring.TrackOrderCreated(tickets)

	return order, nil
}

func (os *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if id == uuid.Nil {
		return nil, validationError("invalid order ID")
	}
	return os.ordersRepo.GetOrder(ctx, id)
}

func (os *OrderService) ListOrdersByUser(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*models.Order, int, error) {
	if offset < 0 || limit <= 0 {
		return nil, 0, validationError("invalid offset or limit")
	}
	if userId == uuid.Nil {
		return nil, 0, validationError("invalid user ID")
	}
	return os.ordersRepo.ListOrdersByUser(ctx, userId, offset, limit)
}

// CancelOrder abandons an unpaid order. Paid orders cannot be cancelled here;
// refunds go through support.
func (os *OrderService) CancelOrder(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return validationError("invalid order ID")
	}
	return os.ordersRepo.SetOrderStatus(ctx, id, models.OrderPendingPayment, models.OrderCancelled)
}
