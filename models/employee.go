package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee represents an employee account that fulfills orders
type Employee struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Phone           string         `gorm:"not null" json:"phone"`
	Email           string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string         `gorm:"not null" json:"-"`
	EarningsBalance float64        `gorm:"not null;default:0" json:"earnings_balance"` // accumulated payout from completed orders
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
