package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laundryola/laundryola-api/middleware"
	"github.com/laundryola/laundryola-api/models"
)

func TestListServicesEndpoint(t *testing.T) {
	db := setupTestDB(t)
	createTestService(t, db, "Wash & Fold", 30)
	createTestService(t, db, "Dry Clean", 50)

	router := setupTestRouter()
	router.GET("/services", ListServices)

	w := performJSON(t, router, http.MethodGet, "/services", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseResponse(t, w)["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestGetServiceEndpoint(t *testing.T) {
	db := setupTestDB(t)
	service := createTestService(t, db, "Wash & Fold", 30)

	router := setupTestRouter()
	router.GET("/services/:id", GetService)

	t.Run("returns the service", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, fmt.Sprintf("/services/%d", service.ID), nil)
		assert.Equal(t, http.StatusOK, w.Code)

		data := parseResponse(t, w)["data"].(map[string]interface{})
		assert.Equal(t, "Wash & Fold", data["name"])
		assert.Equal(t, float64(30), data["price_per_item"])
	})

	t.Run("missing service is 404", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/services/9999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		w := performJSON(t, router, http.MethodGet, "/services/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateServiceEndpoint(t *testing.T) {
	db := setupTestDB(t)
	employee := createTestEmployee(t, db, "employee@example.com")

	router := setupTestRouter()
	router.POST("/services", mockAuthMiddleware(employee.ID, middleware.RoleEmployee), CreateService)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "creates a service",
			requestBody:    map[string]interface{}{"name": "Wash & Fold", "price_per_item": 30},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "rejects missing price",
			requestBody:    map[string]interface{}{"name": "Free Wash"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects non-positive price",
			requestBody:    map[string]interface{}{"name": "Free Wash", "price_per_item": 0},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects short name",
			requestBody:    map[string]interface{}{"name": "X", "price_per_item": 10},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performJSON(t, router, http.MethodPost, "/services", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestUpdateServiceEndpoint(t *testing.T) {
	db := setupTestDB(t)
	service := createTestService(t, db, "Wash & Fold", 30)
	employee := createTestEmployee(t, db, "employee@example.com")

	router := setupTestRouter()
	router.PUT("/services/:id", mockAuthMiddleware(employee.ID, middleware.RoleEmployee), UpdateService)

	t.Run("updates name and price", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPut, fmt.Sprintf("/services/%d", service.ID),
			map[string]interface{}{"name": "Premium Wash", "price_per_item": 45})
		assert.Equal(t, http.StatusOK, w.Code)

		var reloaded models.Service
		require.NoError(t, db.First(&reloaded, service.ID).Error)
		assert.Equal(t, "Premium Wash", reloaded.Name)
		assert.Equal(t, 45.0, reloaded.PricePerItem)
	})

	t.Run("missing service is 404", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPut, "/services/9999",
			map[string]interface{}{"name": "Premium Wash"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteServiceEndpoint(t *testing.T) {
	db := setupTestDB(t)
	service := createTestService(t, db, "Wash & Fold", 30)
	employee := createTestEmployee(t, db, "employee@example.com")

	router := setupTestRouter()
	router.DELETE("/services/:id", mockAuthMiddleware(employee.ID, middleware.RoleEmployee), DeleteService)

	w := performJSON(t, router, http.MethodDelete, fmt.Sprintf("/services/%d", service.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Service{}).Where("id = ?", service.ID).Count(&count)
	assert.Zero(t, count)

	// Deleting again is a 404
	w = performJSON(t, router, http.MethodDelete, fmt.Sprintf("/services/%d", service.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
