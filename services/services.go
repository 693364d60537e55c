package services

import "github.com/yeremiapane/hotel-backoffice/database"

// Services bundles every ledger and catalog over one store. It is what the
// presentation layer holds on to.
type Services struct {
	Customers  *CustomerService
	Menu       *MenuService
	Rooms      *RoomService
	Orders     *OrderService
	Bookings   *BookingService
	Tickets    *TicketService
	Categories *CategoryService
	Reports    *ReportService
}

func New(store *database.Store) *Services {
	customers := NewCustomerService(store)
	orders := NewOrderService(store)
	bookings := NewBookingService(store)
	tickets := NewTicketService(store)

	return &Services{
		Customers:  customers,
		Menu:       NewMenuService(store),
		Rooms:      NewRoomService(store),
		Orders:     orders,
		Bookings:   bookings,
		Tickets:    tickets,
		Categories: NewCategoryService(store),
		Reports:    NewReportService(orders, bookings, tickets),
	}
}

// CustomerFilter narrows list operations by customer. Empty fields do not
// filter; non-empty ones are case-sensitive substring matches, ANDed.
type CustomerFilter struct {
	Name  string
	Phone string
}

type (
	OrderFilter   = CustomerFilter
	BookingFilter = CustomerFilter
	TicketFilter  = CustomerFilter
	ReportFilter  = CustomerFilter
)
