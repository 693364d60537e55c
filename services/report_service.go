package services

import (
	"context"
	"fmt"

	"github.com/yeremiapane/hotel-backoffice/models"
	"github.com/yeremiapane/hotel-backoffice/utils"
)

// ReportService builds the per-customer activity report over the three
// ledgers.
type ReportService struct {
	orders   *OrderService
	bookings *BookingService
	tickets  *TicketService
}

func NewReportService(orders *OrderService, bookings *BookingService, tickets *TicketService) *ReportService {
	return &ReportService{orders: orders, bookings: bookings, tickets: tickets}
}

type Summary struct {
	Orders   []models.OrderRow
	Bookings []models.BookingRow
	Tickets  []models.TicketRow

	OrderCount   int
	OrderTotal   int64
	BookingCount int
	BookingTotal int64
	TicketCount  int
}

// Summary applies the same customer filter to all three ledgers.
func (s *ReportService) Summary(ctx context.Context, filter ReportFilter) (*Summary, error) {
	orders, err := s.orders.ListOrders(ctx, filter)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.ListBookingsFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}
	tickets, err := s.tickets.ListTicketsFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Orders:       orders,
		Bookings:     bookings,
		Tickets:      tickets,
		OrderCount:   len(orders),
		BookingCount: len(bookings),
		TicketCount:  len(tickets),
	}
	for _, o := range orders {
		summary.OrderTotal += o.Total
	}
	for _, b := range bookings {
		summary.BookingTotal += b.Total
	}
	return summary, nil
}

// Headlines returns one display line per ledger.
func (s *Summary) Headlines() []string {
	return []string{
		fmt.Sprintf("Orders: %d | Total %s", s.OrderCount, utils.FormatPKR(s.OrderTotal)),
		fmt.Sprintf("Bookings: %d | Total %s", s.BookingCount, utils.FormatPKR(s.BookingTotal)),
		fmt.Sprintf("Tickets: %d", s.TicketCount),
	}
}
