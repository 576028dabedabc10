package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/laundryola/laundryola-api/models"
)

// DefaultTransactionLimit is the number of ledger rows returned when the
// caller does not ask for a specific limit.
const DefaultTransactionLimit = 20

// WalletService manages customer wallet deposits and the transaction
// ledger. Every balance change appends a ledger row in the same
// transaction, so the signed ledger sum always reconciles to the balance.
type WalletService struct {
	db           *gorm.DB
	depositLimit float64
}

// NewWalletService creates a WalletService with a per-transaction deposit cap
func NewWalletService(db *gorm.DB, depositLimit float64) *WalletService {
	return &WalletService{db: db, depositLimit: depositLimit}
}

// AddMoney credits the customer wallet and records a CREDIT ledger entry.
// Amounts must be positive and within the configured per-transaction limit.
func (s *WalletService) AddMoney(customerID uint, amount float64) (*models.Customer, *models.WalletTransaction, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidAmount
	}
	if amount > s.depositLimit {
		return nil, nil, ErrAmountExceedsLimit
	}

	var customer models.Customer
	var entry models.WalletTransaction
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return err
		}

		if err := tx.Model(&models.Customer{}).
			Where("id = ?", customerID).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", amount)).Error; err != nil {
			return err
		}

		entry = models.WalletTransaction{
			Reference:   uuid.NewString(),
			CustomerID:  customerID,
			Type:        models.TransactionTypeCredit,
			Amount:      amount,
			Description: "Money added to wallet",
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		// Reload so the caller sees the new balance
		return tx.First(&customer, customerID).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return &customer, &entry, nil
}

// Balance returns the customer's current wallet balance
func (s *WalletService) Balance(customerID uint) (float64, error) {
	var customer models.Customer
	if err := s.db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCustomerNotFound
		}
		return 0, err
	}
	return customer.WalletBalance, nil
}

// Transactions returns the customer's ledger history, newest first
func (s *WalletService) Transactions(customerID uint, limit int) ([]models.WalletTransaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	var entries []models.WalletTransaction
	err := s.db.Where("customer_id = ?", customerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
