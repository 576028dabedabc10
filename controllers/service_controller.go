package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/laundryola/laundryola-api/config"
	"github.com/laundryola/laundryola-api/models"
	"github.com/laundryola/laundryola-api/utils"
)

// CreateServiceRequest represents the request body for creating a service
type CreateServiceRequest struct {
	Name         string  `json:"name" binding:"required,min=2,max=100"`
	PricePerItem float64 `json:"price_per_item" binding:"required,gt=0"`
}

// UpdateServiceRequest represents the request body for updating a service
type UpdateServiceRequest struct {
	Name         string  `json:"name" binding:"omitempty,min=2,max=100"`
	PricePerItem float64 `json:"price_per_item" binding:"omitempty,gt=0"`
}

// ListServices handles GET /api/services - no authentication required
func ListServices(c *gin.Context) {
	db := config.GetDB()
	var list []models.Service
	if err := db.Order("name ASC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to load services", http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, utils.Success(list, "Success"))
}

// GetService handles GET /api/services/:id
func GetService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var service models.Service
	if err := db.First(&service, id).Error; err != nil {
		c.JSON(http.StatusNotFound, utils.Error("Service not found", http.StatusNotFound))
		return
	}
	c.JSON(http.StatusOK, utils.Success(service, "Success"))
}

// CreateService handles POST /api/services (employees only)
func CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}

	service := models.Service{
		Name:         req.Name,
		PricePerItem: req.PricePerItem,
	}

	db := config.GetDB()
	if err := db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to create service", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusCreated, utils.Success(service, "Service created successfully"))
}

// UpdateService handles PUT /api/services/:id (employees only). Price
// changes never touch existing orders; their totals were frozen at
// placement time.
func UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid request data: "+err.Error(), http.StatusBadRequest))
		return
	}

	db := config.GetDB()
	var service models.Service
	if err := db.First(&service, id).Error; err != nil {
		c.JSON(http.StatusNotFound, utils.Error("Service not found", http.StatusNotFound))
		return
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.PricePerItem > 0 {
		service.PricePerItem = req.PricePerItem
	}

	if err := db.Save(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to update service", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, utils.Success(service, "Service updated successfully"))
}

// DeleteService handles DELETE /api/services/:id (employees only)
func DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var service models.Service
	if err := db.First(&service, id).Error; err != nil {
		c.JSON(http.StatusNotFound, utils.Error("Service not found", http.StatusNotFound))
		return
	}

	if err := db.Delete(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utils.Error("Failed to delete service", http.StatusInternalServerError))
		return
	}

	c.JSON(http.StatusOK, utils.Success(nil, "Service deleted successfully"))
}

// parseIDParam parses the :id path parameter, responding with 400 on
// malformed input
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, utils.Error("Invalid id parameter", http.StatusBadRequest))
		return 0, false
	}
	return uint(id), true
}
