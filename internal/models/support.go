package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SupportStatus string

const (
	SupportOpen     SupportStatus = "open"
	SupportResolved SupportStatus = "resolved"
	SupportClosed   SupportStatus = "closed"
)

type SupportTicket struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserId uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Subject  string        `gorm:"size:128;not null" json:"subject" validate:"required,min=2,max=128"`
	Message  string        `gorm:"not null" json:"message" validate:"required"`
	Status   SupportStatus `gorm:"size:16;not null;default:open" json:"status"`
	Response string        `json:"response,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (st *SupportTicket) BeforeCreate(tx *gorm.DB) (err error) {
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}
	return
}

type UpdateSupportTicketInput struct {
	Status   *SupportStatus `json:"status,omitempty"`
	Response *string        `json:"response,omitempty"`
}
