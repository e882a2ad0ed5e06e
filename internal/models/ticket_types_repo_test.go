package models

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteTicketTypeRefusedOnceSold(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	event := seedEvent(t, r, "10.00", 10)
	buyer := seedUser(t, r, "buyer@test.dev")
	tt := event.TicketTypes[0]

	_, err := r.CreateOrder(ctx, buyer.ID, []OrderLine{
		{TicketTypeId: tt.ID, Quantity: 1},
	})
	require.NoError(t, err)

	err = r.DeleteTicketType(ctx, tt.ID)
	require.ErrorIs(t, err, ErrTicketTypeInUse)

	// Unsold types can be removed.
	event2 := seedEvent(t, r, "5.00", 10)
	require.NoError(t, r.DeleteTicketType(ctx, event2.TicketTypes[0].ID))

	_, err = r.GetTicketType(ctx, event2.TicketTypes[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
