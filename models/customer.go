package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer represents a customer account with a prepaid wallet
type Customer struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Phone         string         `gorm:"not null" json:"phone"`
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	Address       string         `gorm:"not null" json:"address"`
	WalletBalance float64        `gorm:"not null;default:0" json:"wallet_balance"` // spendable prepaid credit, mutated only by deposits and order payments
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
