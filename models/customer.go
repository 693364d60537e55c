package models

// Customer identity is the (Name, Phone) pair. Two customers sharing a name
// but not a phone, including an empty phone, are different people.
type Customer struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_customers_name_phone" json:"name"`
	Phone *string `gorm:"type:varchar(50);uniqueIndex:idx_customers_name_phone" json:"phone,omitempty"`
	Email *string `gorm:"type:varchar(255)" json:"email,omitempty"`
}
