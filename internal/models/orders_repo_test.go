package models

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderReservesInventoryAndMintsTickets(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	event := seedEvent(t, r, "25.50", 100)
	buyer := seedUser(t, r, "buyer@test.dev")
	tt := event.TicketTypes[0]

	order, err := r.CreateOrder(ctx, buyer.ID, []OrderLine{
		{TicketTypeId: tt.ID, Quantity: 3},
	})
	require.NoError(t, err)

	assert.Equal(t, OrderPendingPayment, order.Status)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("76.50")),
		"expected total 76.50, got %s", order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Len(t, order.Items[0].Tickets, 3)

	for _, ticket := range order.Items[0].Tickets {
		assert.NotEmpty(t, ticket.Code)
		assert.False(t, ticket.Scanned)
		assert.Equal(t, event.ID, ticket.EventId)
	}

	updated, err := r.GetTicketType(ctx, tt.ID)
	require.NoError(t, err)
	assert.Equal(t, 97, updated.QuantityAvailable)
	assert.Equal(t, 3, updated.QuantitySold)
}

func TestCreateOrderInsufficientInventory(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	event := seedEvent(t, r, "10.00", 2)
	buyer := seedUser(t, r, "buyer@test.dev")
	tt := event.TicketTypes[0]

	_, err := r.CreateOrder(ctx, buyer.ID, []OrderLine{
		{TicketTypeId: tt.ID, Quantity: 3},
	})
	require.ErrorIs(t, err, ErrInsufficientInventory)

	// Nothing was reserved and no tickets were minted.
	after, err := r.GetTicketType(ctx, tt.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.QuantityAvailable)
	assert.Equal(t, 0, after.QuantitySold)

	var ticketCount int64
	require.NoError(t, r.DB().Model(&Ticket{}).Count(&ticketCount).Error)
	assert.Zero(t, ticketCount)
}

func TestCreateOrderFailingLineRollsBackWholeOrder(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	event := seedEvent(t, r, "10.00", 50)
	buyer := seedUser(t, r, "buyer@test.dev")
	plenty := event.TicketTypes[0]

	scarce, err := r.CreateTicketType(ctx, &TicketType{
		EventId:           event.ID,
		Name:              "VIP",
		Price:             decimal.RequireFromString("99.00"),
		QuantityAvailable: 1,
	})
	require.NoError(t, err)

	_, err = r.CreateOrder(ctx, buyer.ID, []OrderLine{
		{TicketTypeId: plenty.ID, Quantity: 2},
		{TicketTypeId: scarce.ID, Quantity: 5},
	})
	require.ErrorIs(t, err, ErrInsufficientInventory)

	// The first line's reservation must have been rolled back too.
	after, err := r.GetTicketType(ctx, plenty.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, after.QuantityAvailable)
	assert.Equal(t, 0, after.QuantitySold)

	var orderCount int64
	require.NoError(t, r.DB().Model(&Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestCreateOrderUnknownTicketType(t *testing.T) {
	r := newTestRepo(t)
	buyer := seedUser(t, r, "buyer@test.dev")

	_, err := r.CreateOrder(context.Background(), buyer.ID, []OrderLine{
		{TicketTypeId: uuid.New(), Quantity: 1},
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateOrderRejectsBadInput(t *testing.T) {
	r := newTestRepo(t)
	buyer := seedUser(t, r, "buyer@test.dev")

	_, err := r.CreateOrder(context.Background(), buyer.ID, nil)
	require.ErrorIs(t, err, ErrValidation)

	event := seedEvent(t, r, "10.00", 5)
	_, err = r.CreateOrder(context.Background(), buyer.ID, []OrderLine{
		{TicketTypeId: event.TicketTypes[0].ID, Quantity: 0},
	})
	require.ErrorIs(t, err, ErrValidation)
}

// Concurrent buyers racing for the last unit: at most one order may succeed
// and the inventory may never go negative.
func TestCreateOrderConcurrentLastUnit(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	event := seedEvent(t, r, "10.00", 1)
	tt := event.TicketTypes[0]

	const buyers = 8
	users := make([]*User, buyers)
	for i := range users {
		users[i] = seedUser(t, r, uuid.NewString()+"@race.test")
	}

	var wg sync.WaitGroup
	results := make(chan error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(u *User) {
			defer wg.Done()
			_, err := r.CreateOrder(ctx, u.ID, []OrderLine{
				{TicketTypeId: tt.ID, Quantity: 1},
			})
			results <- err
		}(users[i])
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}
	// sqlite may reject some writers with lock errors, so the only hard
	// guarantees are the inventory ones.
	assert.LessOrEqual(t, succeeded, 1, "overselling: more than one buyer got the last unit")

	after, err := r.GetTicketType(ctx, tt.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, after.QuantityAvailable, 0)
	assert.Equal(t, 1, after.QuantityAvailable+after.QuantitySold)
}

func TestSetOrderStatusGuardsTransitions(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	event := seedEvent(t, r, "10.00", 10)
	buyer := seedUser(t, r, "buyer@test.dev")

	order, err := r.CreateOrder(ctx, buyer.ID, []OrderLine{
		{TicketTypeId: event.TicketTypes[0].ID, Quantity: 1},
	})
	require.NoError(t, err)

	require.NoError(t, r.SetOrderStatus(ctx, order.ID, OrderPendingPayment, OrderCancelled))

	// A late payment confirmation cannot resurrect the cancelled order; the
	// order exists, so this is a status conflict rather than a not-found.
	err = r.SetOrderStatus(ctx, order.ID, OrderPendingPayment, OrderPaid)
	require.ErrorIs(t, err, ErrOrderStatusConflict)

	err = r.SetOrderStatus(ctx, uuid.New(), OrderPendingPayment, OrderPaid)
	require.ErrorIs(t, err, ErrNotFound)

	final, err := r.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderCancelled, final.Status)
}

func TestListOrdersByUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	event := seedEvent(t, r, "10.00", 10)
	buyer := seedUser(t, r, "buyer@test.dev")
	other := seedUser(t, r, "other@test.dev")

	for i := 0; i < 3; i++ {
		_, err := r.CreateOrder(ctx, buyer.ID, []OrderLine{
			{TicketTypeId: event.TicketTypes[0].ID, Quantity: 1},
		})
		require.NoError(t, err)
	}

	orders, total, err := r.ListOrdersByUser(ctx, buyer.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Len(t, orders, 3)

	orders, total, err = r.ListOrdersByUser(ctx, other.ID, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, orders)
}
