package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketTypeSales struct {
	TicketTypeId uuid.UUID       `json:"ticket_type_id"`
	Name         string          `json:"name"`
	Sold         int             `json:"sold"`
	Available    int             `json:"available"`
	Revenue      decimal.Decimal `json:"revenue"`
	Scanned      int             `json:"scanned"`
}

type EventSales struct {
	EventId     uuid.UUID         `json:"event_id"`
	Title       string            `json:"title"`
	TicketTypes []TicketTypeSales `json:"ticket_types"`
	TotalSold   int               `json:"total_sold"`
	Revenue     decimal.Decimal   `json:"revenue"`
}

type PlatformSummary struct {
	Orders         int             `json:"orders"`
	PaidOrders     int             `json:"paid_orders"`
	Revenue        decimal.Decimal `json:"revenue"`
	TicketsIssued  int             `json:"tickets_issued"`
	TicketsScanned int             `json:"tickets_scanned"`
	UpcomingEvents int             `json:"upcoming_events"`
}

type AnalyticsRepo interface {
	EventSalesReport(ctx context.Context, eventId uuid.UUID) (*EventSales, error)
	Summary(ctx context.Context) (*PlatformSummary, error)
}

func (r *Repo) EventSalesReport(ctx context.Context, eventId uuid.UUID) (*EventSales, error) {
	event, err := r.GetEvent(ctx, eventId)
	if err != nil {
		return nil, err
	}

	report := &EventSales{
		EventId: event.ID,
		Title:   event.Title,
		Revenue: decimal.Zero,
	}

	for _, tt := range event.TicketTypes {
		var scanned int64
		err := r.db.WithContext(ctx).Model(&Ticket{}).
			Where("ticket_type_id = ? AND scanned = ?", tt.ID, true).
			Count(&scanned).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count scanned tickets: %v", err)
		}

		// Revenue comes from the recorded order-item subtotals, so a later
		// price edit on the type does not rewrite history.
		var subtotals []decimal.Decimal
		err = r.db.WithContext(ctx).Model(&OrderItem{}).
			Where("ticket_type_id = ?", tt.ID).
			Pluck("subtotal", &subtotals).Error
		if err != nil {
			return nil, fmt.Errorf("failed to sum ticket type revenue: %v", err)
		}
		revenue := decimal.Zero
		for _, s := range subtotals {
			revenue = revenue.Add(s)
		}
		report.TicketTypes = append(report.TicketTypes, TicketTypeSales{
			TicketTypeId: tt.ID,
			Name:         tt.Name,
			Sold:         tt.QuantitySold,
			Available:    tt.QuantityAvailable,
			Revenue:      revenue,
			Scanned:      int(scanned),
		})
		report.TotalSold += tt.QuantitySold
		report.Revenue = report.Revenue.Add(revenue)
	}

	return report, nil
}

func (r *Repo) Summary(ctx context.Context) (*PlatformSummary, error) {
	summary := &PlatformSummary{Revenue: decimal.Zero}

	var orders, paid, issued, scanned, upcoming int64
	db := r.db.WithContext(ctx)

	if err := db.Model(&Order{}).Count(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %v", err)
	}
	if err := db.Model(&Order{}).Where("status = ?", OrderPaid).Count(&paid).Error; err != nil {
		return nil, fmt.Errorf("failed to count paid orders: %v", err)
	}
	if err := db.Model(&Ticket{}).Count(&issued).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %v", err)
	}
	if err := db.Model(&Ticket{}).Where("scanned = ?", true).Count(&scanned).Error; err != nil {
		return nil, fmt.Errorf("failed to count scanned tickets: %v", err)
	}
	if err := db.Model(&Event{}).Where("start_time > CURRENT_TIMESTAMP").Count(&upcoming).Error; err != nil {
		return nil, fmt.Errorf("failed to count upcoming events: %v", err)
	}

	// Sum paid revenue in Go with decimal; SUM on a decimal column comes back
	// driver-dependent.
	var amounts []decimal.Decimal
	err := db.Model(&Order{}).
		Where("status = ?", OrderPaid).
		Pluck("total_amount", &amounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %v", err)
	}
	for _, a := range amounts {
		summary.Revenue = summary.Revenue.Add(a)
	}

	summary.Orders = int(orders)
	summary.PaidOrders = int(paid)
	summary.TicketsIssued = int(issued)
	summary.TicketsScanned = int(scanned)
	summary.UpcomingEvents = int(upcoming)
	return summary, nil
}
