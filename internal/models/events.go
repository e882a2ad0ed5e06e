package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VenueId uuid.UUID `gorm:"type:uuid;index;not null" json:"venue_id" validate:"required"`
	HostId  uuid.UUID `gorm:"type:uuid;index;not null" json:"host_id"`

	Title       string    `gorm:"size:128;not null" json:"title" validate:"required,min=2,max=128"`
	Description string    `json:"description,omitempty"`
	Category    string    `gorm:"size:64;index" json:"category" validate:"required"`
	Images      []string  `gorm:"serializer:json" json:"images,omitempty"`
	StartTime   time.Time `gorm:"index" json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time"`

	Venue       *Venue       `gorm:"foreignKey:VenueId" json:"venue,omitempty"`
	TicketTypes []TicketType `gorm:"foreignKey:EventId" json:"ticket_types,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
