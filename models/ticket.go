package models

import "time"

const TicketStatusOpen = "Open"

// Ticket keeps Category as free text. The category registry only feeds the
// selectable list; it is not a foreign key.
type Ticket struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID *uint     `gorm:"index" json:"customer_id,omitempty"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
	Category   string    `gorm:"type:varchar(100)" json:"category"`
	Subject    string    `gorm:"type:varchar(255);not null" json:"subject"`
	Message    string    `gorm:"type:text" json:"message"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Open'" json:"status"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
