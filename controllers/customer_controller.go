package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/laundryola/laundryola-api/config"
	"github.com/laundryola/laundryola-api/middleware"
	"github.com/laundryola/laundryola-api/models"
	"github.com/laundryola/laundryola-api/services"
	"github.com/laundryola/laundryola-api/utils"
)

// UpdateCustomerProfileRequest represents the request body for profile updates.
// All fields are optional; empty fields keep their current values.
type UpdateCustomerProfileRequest struct {
	Name    string `json:"name" binding:"omitempty,min=2,max=100"`
	Phone   string `json:"phone" binding:"omitempty"`
	Email   string `json:"email" binding:"omitempty,email"`
	Address string `json:"address" binding:"omitempty,min=5,max=255"`
}

// AddMoneyRequest represents the request body for wallet deposits
type AddMoneyRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// GetCustomerProfile handles GET /api/customers/profile
func GetCustomerProfile(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	db := config.GetDB()
	var customer models.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		c.JSON(http.StatusNotFound, utils.Error("Customer not found", http.StatusNotFound))
		return
	}

	// Derived order stats shown on the profile page
	var totalOrders, completedOrders int64
	var totalSpent float64
	db.Model(&models.Order{}).Where("customer_id = ?", customerID).Count(&totalOrders)
	db.Model(&models.Order{}).Where("customer_id = ? AND status = ?", customerID, models.OrderStatusCompleted).Count(&completedOrders)
	db.Model(&models.Order{}).Where("customer_id = ? AND status = ?", customerID, models.OrderStatusCompleted).
		Select("COALESCE(SUM(total_amount), 0)").Scan(&totalSpent)

	c.JSON(http.StatusOK, utils.Success(gin.H{
		"customer":         customer,
		"total_orders":     totalOrders,
		"completed_orders": completedOrders,
		"total_spent":      totalSpent,
	}, "Success"))
}

// GetCustomerDashboard handles GET /api/customers/dashboard
func GetCustomerDashboard(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	db := config.GetDB()
	var customer models.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		c.JSON(http.StatusNotFound, utils.Error("Customer not found", http.StatusNotFound))
		return
	}

	var recentOrders []models.Order
	if err := db.Preload("Service").Preload("Employee").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Limit(5).
		Find(&recentOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to load recent orders", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"profile":       customer,
		"recent_orders": recentOrders,
	})
}

// UpdateCustomerProfile handles PUT /api/customers/profile
func UpdateCustomerProfile(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	var req UpdateCustomerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, utils.Error("Phone must contain 10 to 15 digits", http.StatusBadRequest))
		return
	}

	db := config.GetDB()
	var customer models.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		c.JSON(http.StatusNotFound, utils.Error("Customer not found", http.StatusNotFound))
		return
	}

	if req.Name != "" {
		customer.Name = req.Name
	}
	if req.Phone != "" {
		customer.Phone = req.Phone
	}
	if req.Email != "" {
		customer.Email = req.Email
	}
	if req.Address != "" {
		customer.Address = req.Address
	}

	if err := db.Save(&customer).Error; err != nil {
		if isDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, utils.Error("Email already exists", http.StatusConflict))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to update profile", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, utils.Success(customer, "Profile updated successfully"))
}

// AddMoney handles POST /api/customers/wallet/add
func AddMoney(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	var req AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}
	if !utils.IsValidMoneyAmount(req.Amount) {
		c.JSON(http.StatusBadRequest, utils.Error("Amount must be positive with at most two decimal places", http.StatusBadRequest))
		return
	}

	wallet := services.NewWalletService(config.GetDB(), config.GetConfig().WalletDepositLimit)
	customer, entry, err := wallet.AddMoney(customerID, req.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.Success(gin.H{
		"wallet_balance": customer.WalletBalance,
		"transaction":    entry,
	}, "Money added successfully"))
}

// GetWalletBalance handles GET /api/customers/wallet/balance
func GetWalletBalance(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	wallet := services.NewWalletService(config.GetDB(), config.GetConfig().WalletDepositLimit)
	balance, err := wallet.Balance(customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.Success(gin.H{"wallet_balance": balance}, "Success"))
}

// GetTransactions handles GET /api/customers/transactions with an optional
// ?limit= query parameter
func GetTransactions(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			c.JSON(http.StatusBadRequest, utils.Error("limit must be a positive integer", http.StatusBadRequest))
			return
		}
	}

	wallet := services.NewWalletService(config.GetDB(), config.GetConfig().WalletDepositLimit)
	entries, err := wallet.Transactions(customerID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.Success(entries, "Success"))
}

// GetCustomerOrders handles GET /api/customers/orders
func GetCustomerOrders(c *gin.Context) {
	customerID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	svc := services.NewOrderService(config.GetDB())
	orders, err := svc.OrdersForCustomer(customerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.Success(orders, "Success"))
}
