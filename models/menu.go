package models

// MenuItem is a purchasable dish. Items are never hard-deleted because
// historical order lines reference them; retire them with Active=false.
type MenuItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	Name      string  `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Category  string  `gorm:"type:varchar(100);not null" json:"category"`
	Price     int64   `gorm:"not null;check:price >= 0" json:"price"`
	ImageHint *string `gorm:"column:image_path;type:varchar(255)" json:"image_hint,omitempty"`
	Active    bool    `gorm:"column:is_active;not null;default:true" json:"active"`
}
