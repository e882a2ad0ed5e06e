package models

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrdersRepo interface {
	CreateOrder(ctx context.Context, userId uuid.UUID, lines []OrderLine) (*Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrdersByUser(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*Order, int, error)
	SetOrderStatus(ctx context.Context, id uuid.UUID, from, to OrderStatus) error
}

// CreateOrder reserves inventory, records the order and mints one ticket per
// purchased unit, all inside a single database transaction. Inventory is
// taken with a conditional decrement so two concurrent purchases of the last
// unit can never both succeed; any failing line rolls back the whole order.
func (r *Repo) CreateOrder(ctx context.Context, userId uuid.UUID, lines []OrderLine) (*Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one line", ErrValidation)
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
	}

	var orderId uuid.UUID
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		order := &Order{
			UserId: userId,
			Status: OrderPendingPayment,
		}

		type reservedLine struct {
			ticketType *TicketType
			quantity   int
			subtotal   decimal.Decimal
		}
		reserved := make([]reservedLine, 0, len(lines))

		for _, line := range lines {
			// Conditional decrement: zero rows affected means the type is
			// missing or the guard failed, and the transaction aborts.
			res := tx.Model(&TicketType{}).
				Where("id = ? AND quantity_available >= ?", line.TicketTypeId, line.Quantity).
				Updates(map[string]interface{}{
					"quantity_available": gorm.Expr("quantity_available - ?", line.Quantity),
					"quantity_sold":      gorm.Expr("quantity_sold + ?", line.Quantity),
				})
			if res.Error != nil {
				return fmt.Errorf("failed to reserve inventory: %v", res.Error)
			}
			if res.RowsAffected == 0 {
				var tt TicketType
				err := tx.First(&tt, "id = ?", line.TicketTypeId).Error
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				if err != nil {
					return fmt.Errorf("failed to check ticket type: %v", err)
				}
				return ErrInsufficientInventory
			}

			var tt TicketType
			if err := tx.First(&tt, "id = ?", line.TicketTypeId).Error; err != nil {
				return fmt.Errorf("failed to load ticket type: %v", err)
			}

			subtotal := tt.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)
			reserved = append(reserved, reservedLine{
				ticketType: &tt,
				quantity:   line.Quantity,
				subtotal:   subtotal,
			})
		}

		order.TotalAmount = total
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %v", err)
		}

		for _, line := range reserved {
			item := &OrderItem{
				OrderId:      order.ID,
				TicketTypeId: line.ticketType.ID,
				Quantity:     line.quantity,
				UnitPrice:    line.ticketType.Price,
				Subtotal:     line.subtotal,
			}
			if err := tx.Create(item).Error; err != nil {
				return fmt.Errorf("failed to create order item: %v", err)
			}

			for i := 0; i < line.quantity; i++ {
				ticket := &Ticket{
					OrderItemId:  item.ID,
					UserId:       userId,
					EventId:      line.ticketType.EventId,
					TicketTypeId: line.ticketType.ID,
					Code:         NewTicketCode(),
				}
				if err := tx.Create(ticket).Error; err != nil {
					return fmt.Errorf("failed to create ticket: %v", err)
				}
			}
		}

		orderId = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetOrder(ctx, orderId)
}

func (r *Repo) GetOrder(ctx context.Context, id uuid.UUID) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Tickets").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %v", err)
	}
	return &order, nil
}

func (r *Repo) ListOrdersByUser(ctx context.Context, userId uuid.UUID, offset, limit int) ([]*Order, int, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", userId).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %v", err)
	}

	var orders []*Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %v", err)
	}
	return orders, int(total), nil
}

// SetOrderStatus transitions an order only from the expected current status,
// so a late webhook cannot resurrect a cancelled order.
func (r *Repo) SetOrderStatus(ctx context.Context, id uuid.UUID, from, to OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %v", res.Error)
	}
	if res.RowsAffected == 0 {
		// Zero rows means the order is missing or sits in another status.
		var order Order
		err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to check order status: %v", err)
		}
		return ErrOrderStatusConflict
	}
	return nil
}
