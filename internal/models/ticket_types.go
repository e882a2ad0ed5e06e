package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TicketType is a priced admission category with finite inventory.
// Invariant: QuantityAvailable never goes negative, and order creation moves
// units between QuantityAvailable and QuantitySold in equal amounts.
type TicketType struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventId uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`

	Name              string          `gorm:"size:64;not null" json:"name" validate:"required,min=1,max=64"`
	Price             decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	QuantityAvailable int             `gorm:"not null" json:"quantity_available" validate:"gte=0"`
	QuantitySold      int             `gorm:"not null;default:0" json:"quantity_sold"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (tt *TicketType) BeforeCreate(tx *gorm.DB) (err error) {
	if tt.ID == uuid.Nil {
		tt.ID = uuid.New()
	}
	return
}

type UpdateTicketTypeInput struct {
	Name              *string          `json:"name,omitempty"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	QuantityAvailable *int             `json:"quantity_available,omitempty"`
}
