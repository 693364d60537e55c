package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/hotel-backoffice/services"
)

func TestReport_Summary(t *testing.T) {
	svc, store := setupTestServices(t)
	ctx := context.Background()
	pizza := menuItemID(t, store, "Pizza Margherita")
	suite := roomID(t, store, "301")

	// Ali: two orders, one booking, one ticket. Sara: one of each.
	_, err := svc.Orders.CreateOrder(ctx, "Ali", "0300", services.Cart{pizza: 2})
	require.NoError(t, err)
	_, err = svc.Orders.CreateOrder(ctx, "Ali", "0300", services.Cart{pizza: 30})
	require.NoError(t, err)
	_, err = svc.Orders.CreateOrder(ctx, "Sara", "0321", services.Cart{pizza: 1})
	require.NoError(t, err)
	_, err = svc.Bookings.CreateBooking(ctx, "Ali", "0300", suite, "2025-06-01", "2025-06-03")
	require.NoError(t, err)
	_, err = svc.Bookings.CreateBooking(ctx, "Sara", "0321", suite, "2025-07-01", "2025-07-02")
	require.NoError(t, err)
	_, err = svc.Tickets.CreateTicket(ctx, "Ali", "0300", "Complaint", "Cold pizza", "")
	require.NoError(t, err)
	_, err = svc.Tickets.CreateTicket(ctx, "Sara", "0321", "Other", "Late checkout", "")
	require.NoError(t, err)

	summary, err := svc.Reports.Summary(ctx, services.ReportFilter{Name: "Ali"})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.OrderCount)
	assert.Equal(t, int64(16000), summary.OrderTotal)
	assert.Equal(t, 1, summary.BookingCount)
	assert.Equal(t, int64(24000), summary.BookingTotal)
	assert.Equal(t, 1, summary.TicketCount)
	assert.Len(t, summary.Orders, 2)
	assert.Len(t, summary.Bookings, 1)
	assert.Len(t, summary.Tickets, 1)

	assert.Equal(t, []string{
		"Orders: 2 | Total PKR 16,000",
		"Bookings: 1 | Total PKR 24,000",
		"Tickets: 1",
	}, summary.Headlines())

	everyone, err := svc.Reports.Summary(ctx, services.ReportFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, everyone.OrderCount)
	assert.Equal(t, int64(16500), everyone.OrderTotal)
	assert.Equal(t, 2, everyone.BookingCount)
	assert.Equal(t, int64(36000), everyone.BookingTotal)
	assert.Equal(t, 2, everyone.TicketCount)
}

func TestReport_EmptyFilterMatch(t *testing.T) {
	svc, _ := setupTestServices(t)

	summary, err := svc.Reports.Summary(context.Background(), services.ReportFilter{Phone: "9999"})
	require.NoError(t, err)
	assert.Zero(t, summary.OrderCount)
	assert.Zero(t, summary.OrderTotal)
	assert.Equal(t, []string{"Orders: 0 | Total PKR 0", "Bookings: 0 | Total PKR 0", "Tickets: 0"}, summary.Headlines())
}
