package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/laundryola/laundryola-api/config"
	"github.com/laundryola/laundryola-api/middleware"
	"github.com/laundryola/laundryola-api/models"
	"github.com/laundryola/laundryola-api/utils"
)

// CustomerRegisterRequest represents the request body for customer registration
type CustomerRegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address" binding:"required,min=5,max=255"`
}

// EmployeeRegisterRequest represents the request body for employee registration
type EmployeeRegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request body for customer and employee login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterCustomer handles POST /api/auth/customers/register
func RegisterCustomer(c *gin.Context) {
	var req CustomerRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}
	if !utils.IsValidPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, utils.Error("Phone must contain 10 to 15 digits", http.StatusBadRequest))
		return
	}

	cfg := config.GetConfig()
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cfg.BcryptRounds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to process password", http.StatusInternalServerError))
		return
	}

	customer := models.Customer{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
		Address:      req.Address,
	}

	db := config.GetDB()
	if err := db.Create(&customer).Error; err != nil {
		if isDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, utils.Error("Email already exists", http.StatusConflict))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to create customer", http.StatusInternalServerError))
		return
	}

	token, err := middleware.GenerateToken(cfg, customer.ID, middleware.RoleCustomer, customer.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to issue token", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, utils.Success(gin.H{
		"token":    token,
		"customer": customer,
	}, "Customer registered successfully"))
}

// LoginCustomer handles POST /api/auth/customers/login
func LoginCustomer(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}

	db := config.GetDB()
	var customer models.Customer
	if err := db.Where("email = ?", req.Email).First(&customer).Error; err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Invalid credentials", http.StatusUnauthorized))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Invalid credentials", http.StatusUnauthorized))
		return
	}

	token, err := middleware.GenerateToken(config.GetConfig(), customer.ID, middleware.RoleCustomer, customer.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to issue token", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, utils.Success(gin.H{
		"token":    token,
		"customer": customer,
	}, "Login successful"))
}

// RegisterEmployee handles POST /api/auth/employees/register
func RegisterEmployee(c *gin.Context) {
	var req EmployeeRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}
	if !utils.IsValidPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, utils.Error("Phone must contain 10 to 15 digits", http.StatusBadRequest))
		return
	}

	cfg := config.GetConfig()
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cfg.BcryptRounds)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to process password", http.StatusInternalServerError))
		return
	}

	employee := models.Employee{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	db := config.GetDB()
	if err := db.Create(&employee).Error; err != nil {
		if isDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, utils.Error("Email already exists", http.StatusConflict))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to create employee", http.StatusInternalServerError))
		return
	}

	token, err := middleware.GenerateToken(cfg, employee.ID, middleware.RoleEmployee, employee.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to issue token", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, utils.Success(gin.H{
		"token":    token,
		"employee": employee,
	}, "Employee registered successfully"))
}

// LoginEmployee handles POST /api/auth/employees/login
func LoginEmployee(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}

	db := config.GetDB()
	var employee models.Employee
	if err := db.Where("email = ?", req.Email).First(&employee).Error; err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Invalid credentials", http.StatusUnauthorized))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, utils.Error("Invalid credentials", http.StatusUnauthorized))
		return
	}

	token, err := middleware.GenerateToken(config.GetConfig(), employee.ID, middleware.RoleEmployee, employee.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to issue token", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, utils.Success(gin.H{
		"token":    token,
		"employee": employee,
	}, "Login successful"))
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logout is
// an acknowledgement; the client discards its token.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, utils.Success(nil, "Logged out successfully"))
}

// isDuplicateKeyError detects unique-constraint violations across
// PostgreSQL and SQLite
func isDuplicateKeyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}
