package models

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueTicket(t *testing.T, r *Repo) *Ticket {
	t.Helper()
	ctx := context.Background()

	event := seedEvent(t, r, "15.00", 10)
	buyer := seedUser(t, r, uuid.NewString()+"@buyer.test")

	order, err := r.CreateOrder(ctx, buyer.ID, []OrderLine{
		{TicketTypeId: event.TicketTypes[0].ID, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	require.Len(t, order.Items[0].Tickets, 1)
	return &order.Items[0].Tickets[0]
}

func TestScanTicketOnce(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	ticket := issueTicket(t, r)
	scanner := seedUser(t, r, "gate@staff.test")

	scanned, err := r.ScanTicket(ctx, ticket.ID, scanner.ID)
	require.NoError(t, err)
	assert.True(t, scanned.Scanned)
	require.NotNil(t, scanned.ScannedAt)
	require.NotNil(t, scanned.ScannedByUser)
	assert.Equal(t, scanner.ID, *scanned.ScannedByUser)

	// Second scan of the same ticket is refused and the original scan
	// record is untouched.
	_, err = r.ScanTicket(ctx, ticket.ID, scanner.ID)
	require.ErrorIs(t, err, ErrTicketAlreadyScanned)

	again, err := r.GetTicket(ctx, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, scanned.ScannedAt.Unix(), again.ScannedAt.Unix())
}

func TestScanTicketUnknown(t *testing.T) {
	r := newTestRepo(t)
	scanner := seedUser(t, r, "gate@staff.test")

	_, err := r.ScanTicket(context.Background(), uuid.New(), scanner.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetTicketByCode(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	ticket := issueTicket(t, r)

	found, err := r.GetTicketByCode(ctx, ticket.Code)
	require.NoError(t, err)
	assert.Equal(t, ticket.ID, found.ID)
	require.NotNil(t, found.Event)
	require.NotNil(t, found.TicketType)

	_, err = r.GetTicketByCode(ctx, "TIX-DOESNOTEXIST")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewTicketCodeShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code := NewTicketCode()
		assert.True(t, strings.HasPrefix(code, "TIX-"), "code %q missing prefix", code)
		assert.False(t, seen[code], "duplicate code %q", code)
		seen[code] = true
	}
}
