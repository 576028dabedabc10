package models

import (
	"time"
)

// Wallet transaction types. Amounts are stored signed: CREDIT rows carry a
// positive amount, DEBIT rows a negative one, so the sum of all rows for a
// customer reconciles to the wallet balance.
const (
	TransactionTypeCredit = "CREDIT"
	TransactionTypeDebit  = "DEBIT"
)

// WalletTransaction is an append-only ledger entry for every
// balance-affecting event on a customer wallet
type WalletTransaction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Reference   string    `gorm:"uniqueIndex;not null" json:"reference"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"`
	Type        string    `gorm:"not null" json:"type"`
	Amount      float64   `gorm:"not null" json:"amount"`
	OrderID     *uint     `gorm:"index" json:"order_id,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName specifies the table name for the WalletTransaction model
func (WalletTransaction) TableName() string {
	return "wallet_transactions"
}
