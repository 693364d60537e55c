package models

// OrderItem is one line of an Order. LineTotal is frozen at creation and is
// not recomputed when the menu price changes later.
type OrderItem struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OrderID uint   `gorm:"not null;index" json:"order_id"`
	Order   *Order `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	ItemID  uint   `gorm:"not null;index" json:"item_id"`
	// Omitting Item from JSON to keep lines flat
	Item      *MenuItem `gorm:"foreignKey:ItemID;references:ID;constraint:OnDelete:RESTRICT" json:"-"`
	Qty       int       `gorm:"not null;check:qty >= 1" json:"qty"`
	LineTotal int64     `gorm:"not null" json:"line_total"`
}
