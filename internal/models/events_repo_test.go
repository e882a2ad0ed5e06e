package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventRefusedOnceTicketsIssued(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	event := seedEvent(t, r, "10.00", 10)
	buyer := seedUser(t, r, "buyer@test.dev")

	_, err := r.CreateOrder(ctx, buyer.ID, []OrderLine{
		{TicketTypeId: event.TicketTypes[0].ID, Quantity: 1},
	})
	require.NoError(t, err)

	err = r.DeleteEvent(ctx, event.ID)
	require.ErrorIs(t, err, ErrEventHasTickets)

	// The event and its ticket types survive the refused delete.
	kept, err := r.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Len(t, kept.TicketTypes, 1)
}

func TestDeleteEventRemovesTicketTypes(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	event := seedEvent(t, r, "10.00", 10)
	ttID := event.TicketTypes[0].ID

	require.NoError(t, r.DeleteEvent(ctx, event.ID))

	_, err := r.GetEvent(ctx, event.ID)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = r.GetTicketType(ctx, ttID)
	require.ErrorIs(t, err, ErrNotFound)
}
