package models

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestRepo opens a throwaway sqlite database in the test's temp dir and
// migrates the full schema onto it.
func newTestRepo(t *testing.T) *Repo {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&User{},
		&Venue{},
		&Event{},
		&TicketType{},
		&Order{},
		&OrderItem{},
		&Ticket{},
		&Payment{},
		&SupportTicket{},
		&Favourite{},
	)
	require.NoError(t, err)

	return NewRepo(db)
}

func seedUser(t *testing.T, r *Repo, email string) *User {
	t.Helper()
	user, err := r.CreateUser(context.Background(), &User{
		Username: "testuser",
		Email:    email,
		Password: "not-a-real-hash",
	})
	require.NoError(t, err)
	return user
}

// seedEvent creates a host, venue and event with one ticket type at the given
// price and inventory, and returns the event with the type preloaded.
func seedEvent(t *testing.T, r *Repo, price string, quantity int) *Event {
	t.Helper()
	ctx := context.Background()

	host := seedUser(t, r, uuid.NewString()+"@host.test")

	venue, err := r.CreateVenue(ctx, &Venue{
		HostId:   host.ID,
		Name:     "Test Hall",
		Address:  "1 Test Way",
		City:     "Accra",
		Capacity: 500,
	})
	require.NoError(t, err)

	event, err := r.CreateEvent(ctx, &Event{
		VenueId:   venue.ID,
		HostId:    host.ID,
		Title:     "Launch Night",
		Category:  "music",
		StartTime: time.Now().Add(48 * time.Hour),
		TicketTypes: []TicketType{
			{
				Name:              "General",
				Price:             decimal.RequireFromString(price),
				QuantityAvailable: quantity,
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, event.TicketTypes, 1)
	return event
}
