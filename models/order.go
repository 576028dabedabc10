package models

import (
	"time"

	"gorm.io/gorm"
)

// Order status values. Transitions are strictly forward:
// Pending -> Accepted -> Completed, or Pending -> Rejected.
// Rejected and Completed are terminal.
const (
	OrderStatusPending   = "Pending"
	OrderStatusAccepted  = "Accepted"
	OrderStatusRejected  = "Rejected"
	OrderStatusCompleted = "Completed"
)

// Order represents a laundry order placed by a customer
type Order struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CustomerID  uint           `gorm:"not null;index" json:"customer_id"`
	Customer    Customer       `gorm:"foreignKey:CustomerID" json:"customer"`
	ServiceID   uint           `gorm:"not null;index" json:"service_id"`
	Service     Service        `gorm:"foreignKey:ServiceID" json:"service"`
	EmployeeID  *uint          `gorm:"index" json:"employee_id"` // nullable, assigned when order is accepted
	Employee    *Employee      `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Quantity    int            `gorm:"not null;check:quantity > 0" json:"quantity"`
	TotalAmount float64        `gorm:"not null" json:"total_amount"` // quantity x price at placement time, frozen thereafter
	Status      string         `gorm:"not null;default:'Pending';index" json:"status"`
	CompletedAt *time.Time     `json:"completed_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
