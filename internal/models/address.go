package models

// Address is a postal address owned by exactly one user. Orders reference
// an address by ID; the address must belong to the ordering user.
type Address struct {
	ID                  string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID              string `json:"user_id" gorm:"index;type:varchar(36)"`
	AddressLine1        string `json:"address_line1" gorm:"type:varchar(255)" validate:"required,max=255"`
	AddressLine2        string `json:"address_line2,omitempty" gorm:"type:varchar(255)" validate:"omitempty,max=255"`
	City                string `json:"city" gorm:"type:varchar(100)" validate:"required,max=100"`
	StateProvinceRegion string `json:"state_province_region" gorm:"type:varchar(100)" validate:"required,max=100"`
	PostalCode          string `json:"postal_code" gorm:"type:varchar(20)" validate:"required,max=20"`
	Country             string `json:"country" gorm:"type:varchar(50)" validate:"required,max=50"`
}
