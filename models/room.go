package models

type Room struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	RoomNo        string `gorm:"type:varchar(20);not null;uniqueIndex" json:"room_no"`
	RoomType      string `gorm:"type:varchar(50);not null" json:"room_type"`
	PricePerNight int64  `gorm:"not null" json:"price_per_night"`
	Active        bool   `gorm:"column:is_active;not null;default:true" json:"active"`
}
