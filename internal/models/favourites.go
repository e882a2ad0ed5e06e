package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favourite is an event a user saved for later.
type Favourite struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserId  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_fav_user_event;not null" json:"user_id"`
	EventId uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_fav_user_event;not null" json:"event_id"`

	Event *Event `gorm:"foreignKey:EventId" json:"event,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (f *Favourite) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
