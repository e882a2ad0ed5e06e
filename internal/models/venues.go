package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Venue struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	HostId uuid.UUID `gorm:"type:uuid;index;not null" json:"host_id"`

	Name        string `gorm:"size:128;not null" json:"name" validate:"required,min=2,max=128"`
	Description string `json:"description,omitempty"`
	Address     string `gorm:"size:255" json:"address" validate:"required"`
	City        string `gorm:"size:64" json:"city" validate:"required"`
	Country     string `gorm:"size:64" json:"country"`
	Capacity    int    `json:"capacity" validate:"required,gt=0"`

	Events []Event `gorm:"foreignKey:VenueId" json:"events,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
