package services

import "errors"

// Business errors returned by the order lifecycle and wallet services.
// Controllers map these onto HTTP statuses.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrOrderNotFound    = errors.New("order not found")

	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidAction   = errors.New("action must be one of ACCEPT, REJECT, COMPLETE")

	ErrInsufficientFunds  = errors.New("insufficient wallet balance")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrAmountExceedsLimit = errors.New("amount exceeds the per-transaction deposit limit")

	ErrInvalidTransition = errors.New("order is not in a state that allows this action")
	ErrAlreadyAccepted   = errors.New("order has already been accepted by another employee")
	ErrNotOrderOwner     = errors.New("order was accepted by a different employee")
)
