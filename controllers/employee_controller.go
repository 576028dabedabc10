package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/laundryola/laundryola-api/config"
	"github.com/laundryola/laundryola-api/middleware"
	"github.com/laundryola/laundryola-api/models"
	"github.com/laundryola/laundryola-api/services"
	"github.com/laundryola/laundryola-api/utils"
)

// UpdateEmployeeProfileRequest represents the request body for employee
// profile updates
type UpdateEmployeeProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,min=2,max=100"`
	Phone string `json:"phone" binding:"omitempty"`
	Email string `json:"email" binding:"omitempty,email"`
}

// GetEmployeeDashboard handles GET /api/employees/dashboard
func GetEmployeeDashboard(c *gin.Context) {
	employeeID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	db := config.GetDB()
	var employee models.Employee
	if err := db.First(&employee, employeeID).Error; err != nil {
		c.JSON(http.StatusNotFound, utils.Error("Employee not found", http.StatusNotFound))
		return
	}

	var completedOrders int64
	db.Model(&models.Order{}).
		Where("employee_id = ? AND status = ?", employeeID, models.OrderStatusCompleted).
		Count(&completedOrders)

	svc := services.NewOrderService(db)
	pendingOrders, err := svc.PendingOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to load pending orders", http.StatusInternalServerError))
		return
	}

	var currentWork []models.Order
	if err := db.Preload("Customer").Preload("Service").
		Where("employee_id = ? AND status = ?", employeeID, models.OrderStatusAccepted).
		Order("created_at ASC").
		Find(&currentWork).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to load current work", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"employee_stats": gin.H{
			"name":               employee.Name,
			"earnings_balance":   employee.EarningsBalance,
			"completed_orders":   completedOrders,
			"orders_in_progress": len(currentWork),
		},
		"pending_orders": pendingOrders,
		"current_work":   currentWork,
	})
}

// GetEmployeeOrders handles GET /api/employees/orders. It returns a single
// canonical feed: unassigned Pending orders plus orders assigned to the
// requesting employee.
func GetEmployeeOrders(c *gin.Context) {
	employeeID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	svc := services.NewOrderService(config.GetDB())
	orders, err := svc.OrdersForEmployee(employeeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.Success(orders, "Success"))
}

// UpdateEmployeeProfile handles PUT /api/employees/profile
func UpdateEmployeeProfile(c *gin.Context) {
	employeeID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	var req UpdateEmployeeProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, utils.Error("Phone must contain 10 to 15 digits", http.StatusBadRequest))
		return
	}

	db := config.GetDB()
	var employee models.Employee
	if err := db.First(&employee, employeeID).Error; err != nil {
		c.JSON(http.StatusNotFound, utils.Error("Employee not found", http.StatusNotFound))
		return
	}

	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}
	if req.Email != "" {
		employee.Email = req.Email
	}

	if err := db.Save(&employee).Error; err != nil {
		if isDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, utils.Error("Email already exists", http.StatusConflict))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to update profile", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, utils.Success(employee, "Profile updated successfully"))
}

// GetEmployeeEarnings handles GET /api/employees/earnings
func GetEmployeeEarnings(c *gin.Context) {
	employeeID, err := middleware.GetUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Could not extract user information", http.StatusUnauthorized))
		return
	}

	db := config.GetDB()
	var employee models.Employee
	if err := db.First(&employee, employeeID).Error; err != nil {
		c.JSON(http.StatusNotFound, utils.Error("Employee not found", http.StatusNotFound))
		return
	}

	var completed []models.Order
	if err := db.Preload("Service").
		Where("employee_id = ? AND status = ?", employeeID, models.OrderStatusCompleted).
		Order("completed_at DESC").
		Find(&completed).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to load earnings", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, utils.Success(gin.H{
		"earnings_balance": employee.EarningsBalance,
		"completed_orders": completed,
	}, "Success"))
}
