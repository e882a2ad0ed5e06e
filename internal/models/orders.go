package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPendingPayment OrderStatus = "pending_payment"
	OrderPaid           OrderStatus = "paid"
	OrderCancelled      OrderStatus = "cancelled"
)

type Order struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserId uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	Status        OrderStatus     `gorm:"size:32;not null;default:pending_payment" json:"status"`
	PaymentMethod string          `gorm:"size:32" json:"payment_method,omitempty"`

	Items []OrderItem `gorm:"foreignKey:OrderId" json:"items,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return
}

type OrderItem struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderId      uuid.UUID `gorm:"type:uuid;index;not null" json:"order_id"`
	TicketTypeId uuid.UUID `gorm:"type:uuid;index;not null" json:"ticket_type_id"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`

	Tickets []Ticket `gorm:"foreignKey:OrderItemId" json:"tickets,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return
}

// OrderLine is one requested (ticket type, quantity) pair in a purchase.
type OrderLine struct {
	TicketTypeId uuid.UUID `json:"ticket_type_id" validate:"required"`
	Quantity     int       `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderInput struct {
	Items []OrderLine `json:"items" validate:"required,min=1,dive"`
}
