package models

import "time"

// UserRole distinguishes regular customers from store administrators.
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User represents a registered account.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName    string    `json:"first_name" gorm:"type:varchar(50)" validate:"required,max=50"`
	LastName     string    `json:"last_name" gorm:"type:varchar(50)" validate:"required,max=50"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(100)" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"` // No json tag value for security
	PhoneNumber  string    `json:"phone_number,omitempty" gorm:"type:varchar(20)"`
	Role         UserRole  `json:"role" gorm:"type:varchar(20);default:customer"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Addresses []Address `json:"addresses,omitempty" gorm:"foreignKey:UserID"`
	Orders    []Order   `json:"orders,omitempty" gorm:"foreignKey:UserID"`
}
