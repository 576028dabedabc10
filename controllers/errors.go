package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/laundryola/laundryola-api/services"
	"github.com/laundryola/laundryola-api/utils"
)

// respondServiceError maps business errors from the services package onto
// the HTTP status table: 400 validation/business rule, 403 ownership,
// 404 missing entity, 409 conflict, 500 anything unexpected.
func respondServiceError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrEmployeeNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrAlreadyAccepted):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, services.ErrNotOrderOwner):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidAction),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrAmountExceedsLimit),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrInvalidTransition):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		log.Printf("Unexpected service error: %v", err)
	}

	c.JSON(status, utils.Error(message, status))
}
