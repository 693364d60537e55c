package models

import "time"

// Row types returned by the list operations. They are read models over one
// or more tables and are never written back.

type OrderRow struct {
	ID           uint      `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerName string    `json:"customer_name"`
	Phone        string    `json:"phone"`
	Total        int64     `json:"total"`
}

type OrderLineRow struct {
	ID        uint   `json:"id"`
	OrderID   uint   `json:"order_id"`
	ItemID    uint   `json:"item_id"`
	ItemName  string `json:"item_name"`
	Qty       int    `json:"qty"`
	LineTotal int64  `json:"line_total"`
}

type BookingRow struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	RoomNo    string    `json:"room_no"`
	RoomType  string    `json:"room_type"`
	Nights    int       `json:"nights"`
	Total     int64     `json:"total"`
	Status    string    `json:"status"`
}

// TicketRow carries a nullable Name and Phone: the customer may have been
// removed after the ticket was filed.
type TicketRow struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      *string   `json:"name"`
	Phone     *string   `json:"phone"`
	Category  string    `json:"category"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
}
