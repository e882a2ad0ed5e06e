package models

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewTicketCode returns a unique admission code like "TIX-9F2C4A1B0D3E".
func NewTicketCode() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a uuid
		return "TIX-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
	}
	return "TIX-" + strings.ToUpper(hex.EncodeToString(buf))
}

type Ticket struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderItemId  uuid.UUID `gorm:"type:uuid;index;not null" json:"order_item_id"`
	UserId       uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	EventId      uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	TicketTypeId uuid.UUID `gorm:"type:uuid;index;not null" json:"ticket_type_id"`

	Code string `gorm:"size:64;uniqueIndex;not null" json:"code"`

	Scanned       bool       `gorm:"not null;default:false" json:"scanned"`
	ScannedAt     *time.Time `json:"scanned_at,omitempty"`
	ScannedByUser *uuid.UUID `gorm:"type:uuid" json:"scanned_by_user,omitempty"`

	Event      *Event      `gorm:"foreignKey:EventId" json:"event,omitempty"`
	TicketType *TicketType `gorm:"foreignKey:TicketTypeId" json:"ticket_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
