package models

import "time"

type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerName string    `gorm:"type:varchar(255)" json:"customer_name"`
	Phone        string    `gorm:"type:varchar(50)" json:"phone"`
	Total        int64     `gorm:"not null" json:"total"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
}
