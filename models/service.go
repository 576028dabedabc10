package models

import (
	"time"

	"gorm.io/gorm"
)

// Service represents a laundry service offered to customers.
// Services have no owner: any authenticated employee may manage any service.
type Service struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"not null" json:"name"`
	PricePerItem float64        `gorm:"not null;check:price_per_item > 0" json:"price_per_item"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Service model
func (Service) TableName() string {
	return "services"
}
