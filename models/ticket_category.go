package models

type TicketCategory struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Active bool   `gorm:"column:is_active;not null;default:true" json:"active"`
}
