package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleHost  = "host"
	RoleAdmin = "admin"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username          string    `gorm:"size:64" json:"username" validate:"required,min=3,max=64"`
	FullName          string    `gorm:"size:128" json:"fullname"`
	Email             string    `gorm:"size:255;uniqueIndex;not null" json:"email" validate:"required,email"`
	Password          string    `gorm:"size:255;not null" json:"password,omitempty" validate:"required,min=8"`
	IsVerified        bool      `json:"is_verified"`
	VerificationToken string    `gorm:"size:64" json:"-"`
	Role              string    `gorm:"size:16;default:user" json:"role"`
	PhoneNumber       string    `gorm:"size:32" json:"phone_number"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

// Sanitize clears fields that must never leave the server.
func (u *User) Sanitize() *User {
	u.Password = ""
	return u
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type VerifyInput struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}
