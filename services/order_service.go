package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/laundryola/laundryola-api/models"
)

// Actions accepted by ManageOrder
const (
	ActionAccept   = "ACCEPT"
	ActionReject   = "REJECT"
	ActionComplete = "COMPLETE"
)

// OrderService enforces the order state machine and performs the
// correlated ledger mutations (customer debit, employee credit) as a
// single transaction per transition. Balance changes never happen
// outside of these methods.
type OrderService struct {
	db *gorm.DB
}

// NewOrderService creates an OrderService backed by the given database
func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// PlaceOrder creates a Pending order for the customer. The total amount is
// computed from the service price at this moment and frozen; later price
// changes never alter existing orders. Funds are validated here but not
// debited — the debit happens at completion, which re-validates.
func (s *OrderService) PlaceOrder(customerID, serviceID uint, quantity int) (*models.Order, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	var service models.Service
	if err := s.db.First(&service, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	totalAmount := float64(quantity) * service.PricePerItem
	if customer.WalletBalance < totalAmount {
		return nil, ErrInsufficientFunds
	}

	order := models.Order{
		CustomerID:  customerID,
		ServiceID:   serviceID,
		Quantity:    quantity,
		TotalAmount: totalAmount,
		Status:      models.OrderStatusPending,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Customer").Preload("Service").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ManageOrder executes an employee action on an order and returns the
// updated order with a human-readable confirmation message.
func (s *OrderService) ManageOrder(employeeID, orderID uint, action string) (*models.Order, string, error) {
	var employee models.Employee
	if err := s.db.First(&employee, employeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEmployeeNotFound
		}
		return nil, "", err
	}

	if err := s.db.First(&models.Order{}, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrOrderNotFound
		}
		return nil, "", err
	}

	var message string
	var err error
	switch strings.ToUpper(strings.TrimSpace(action)) {
	case ActionAccept:
		message, err = s.accept(employeeID, orderID)
	case ActionReject:
		message, err = s.reject(orderID)
	case ActionComplete:
		message, err = s.complete(employeeID, orderID)
	default:
		return nil, "", ErrInvalidAction
	}
	if err != nil {
		return nil, "", err
	}

	var order models.Order
	if err := s.db.Preload("Customer").Preload("Service").Preload("Employee").First(&order, orderID).Error; err != nil {
		return nil, "", err
	}
	return &order, message, nil
}

// accept assigns the order to the employee. The conditional update is the
// whole concurrency story: two employees racing to accept the same order
// resolve at the database, and the loser's RowsAffected is zero.
func (s *OrderService) accept(employeeID, orderID uint) (string, error) {
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ? AND employee_id IS NULL", orderID, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"employee_id": employeeID,
			"status":      models.OrderStatusAccepted,
		})
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		var order models.Order
		if err := s.db.First(&order, orderID).Error; err != nil {
			return "", err
		}
		if order.Status == models.OrderStatusAccepted {
			return "", ErrAlreadyAccepted
		}
		return "", ErrInvalidTransition
	}
	return "Order accepted successfully", nil
}

// reject marks a Pending order as Rejected without assigning an employee
func (s *OrderService) reject(orderID uint) (string, error) {
	res := s.db.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, models.OrderStatusPending).
		Update("status", models.OrderStatusRejected)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", ErrInvalidTransition
	}
	return "Order rejected", nil
}

// complete finalizes an Accepted order. The balance check, customer debit,
// ledger append, employee credit and status change commit or roll back as
// one transaction; a failed debit leaves the order Accepted.
func (s *OrderService) complete(employeeID, orderID uint) (string, error) {
	var total float64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return err
		}
		if order.Status != models.OrderStatusAccepted {
			return ErrInvalidTransition
		}
		if order.EmployeeID == nil || *order.EmployeeID != employeeID {
			return ErrNotOrderOwner
		}
		total = order.TotalAmount

		// Debit guarded by the balance: RowsAffected == 0 means the
		// customer can no longer cover the order.
		res := tx.Model(&models.Customer{}).
			Where("id = ? AND wallet_balance >= ?", order.CustomerID, order.TotalAmount).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance - ?", order.TotalAmount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientFunds
		}

		entry := models.WalletTransaction{
			Reference:   uuid.NewString(),
			CustomerID:  order.CustomerID,
			Type:        models.TransactionTypeDebit,
			Amount:      -order.TotalAmount,
			OrderID:     &order.ID,
			Description: fmt.Sprintf("Payment for order #%d", order.ID),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Employee{}).
			Where("id = ?", employeeID).
			UpdateColumn("earnings_balance", gorm.Expr("earnings_balance + ?", order.TotalAmount)).Error; err != nil {
			return err
		}

		now := time.Now()
		res = tx.Model(&models.Order{}).
			Where("id = ? AND status = ? AND employee_id = ?", orderID, models.OrderStatusAccepted, employeeID).
			Updates(map[string]interface{}{
				"status":       models.OrderStatusCompleted,
				"completed_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Order completed successfully. Payment of %.2f processed", total), nil
}

// GetOrder returns one order with its relations loaded
func (s *OrderService) GetOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Customer").Preload("Service").Preload("Employee").First(&order, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// OrdersForCustomer returns the customer's order history, newest first
func (s *OrderService) OrdersForCustomer(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Service").Preload("Employee").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// OrdersForEmployee returns the canonical order feed for an employee:
// unassigned Pending orders plus orders assigned to this employee. The
// client never needs to merge or de-duplicate.
func (s *OrderService) OrdersForEmployee(employeeID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Customer").Preload("Service").
		Where("(status = ? AND employee_id IS NULL) OR employee_id = ?", models.OrderStatusPending, employeeID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// PendingOrders returns all unassigned Pending orders, oldest first
func (s *OrderService) PendingOrders() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Customer").Preload("Service").
		Where("status = ? AND employee_id IS NULL", models.OrderStatusPending).
		Order("created_at ASC").
		Find(&orders).Error
	return orders, err
}
