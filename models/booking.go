package models

import "time"

const BookingStatusBooked = "Booked"

type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	RoomID     uint      `gorm:"not null;index" json:"room_id"`
	Room       *Room     `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	// CheckIn dan CheckOut disimpan sebagai YYYY-MM-DD
	CheckIn   string    `gorm:"type:varchar(10);not null" json:"check_in"`
	CheckOut  string    `gorm:"type:varchar(10);not null" json:"check_out"`
	Nights    int       `gorm:"not null;check:nights > 0" json:"nights"`
	Total     int64     `gorm:"not null" json:"total"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Booked'" json:"status"`
}
