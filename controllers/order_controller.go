package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/laundryola/laundryola-api/config"
	"github.com/laundryola/laundryola-api/middleware"
	"github.com/laundryola/laundryola-api/services"
	"github.com/laundryola/laundryola-api/utils"
)

// PlaceOrderRequest represents the request body for placing an order
type PlaceOrderRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1"`
}

// ManageOrderRequest represents the request body for order state transitions
type ManageOrderRequest struct {
	Action string `json:"action" binding:"required"`
}

// PlaceOrder handles POST /api/orders (customers only)
func PlaceOrder(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}

	svc := services.NewOrderService(config.GetDB())
	order, err := svc.PlaceOrder(customerID, req.ServiceID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, utils.Success(order, "Order placed successfully"))
}

// GetPendingOrders handles GET /api/orders/pending (employees only)
func GetPendingOrders(c *gin.Context) {
	svc := services.NewOrderService(config.GetDB())
	orders, err := svc.PendingOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.Success(orders, "Success"))
}

// ManageOrder handles PUT /api/orders/:id/manage (employees only)
func ManageOrder(c *gin.Context) {
	employeeID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	orderID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ManageOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}

	svc := services.NewOrderService(config.GetDB())
	order, message, err := svc.ManageOrder(employeeID, orderID, req.Action)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.Success(order, message))
}

// GetOrder handles GET /api/orders/:id. Customers may only read their own
// orders; employees may read any.
func GetOrder(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}
	role, err := middleware.GetRole(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	orderID, ok := parseIDParam(c)
	if !ok {
		return
	}

	svc := services.NewOrderService(config.GetDB())
	order, err := svc.GetOrder(orderID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if role == middleware.RoleCustomer && order.CustomerID != userID {
		c.JSON(http.StatusForbidden, utils.Error("You may only view your own orders", http.StatusForbidden))
		return
	}

	c.JSON(http.StatusOK, utils.Success(order, "Success"))
}
