package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var Validate = validator.New()

// Sentinel errors shared by the repositories. Handlers map these to HTTP
// statuses with errors.Is so every resource shapes failures the same way.
var (
	ErrValidation            = errors.New("validation failed")
	ErrNotFound              = errors.New("record not found")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInsufficientInventory = errors.New("insufficient ticket inventory")
	ErrTicketAlreadyScanned  = errors.New("ticket already scanned")
	ErrTicketTypeInUse       = errors.New("ticket type has sold units")
	ErrOrderStatusConflict   = errors.New("order is not in the expected status")
	ErrEventHasTickets       = errors.New("event has issued tickets")
	ErrNotVerified           = errors.New("account not verified")
	ErrInvalidCredentials    = errors.New("invalid email or password")
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// DB exposes the underlying handle for callers that need raw access
// (analytics aggregates, tests).
func (r *Repo) DB() *gorm.DB {
	return r.db
}
