package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laundryola/laundryola-api/middleware"
	"github.com/laundryola/laundryola-api/models"
)

func TestGetEmployeeOrdersEndpoint(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "customer@example.com", 500)
	service := createTestService(t, db, "Ironing", 10)
	me := createTestEmployee(t, db, "me@example.com")
	other := createTestEmployee(t, db, "other@example.com")

	pending := models.Order{CustomerID: customer.ID, ServiceID: service.ID, Quantity: 1, TotalAmount: 10, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&pending).Error)
	mine := models.Order{CustomerID: customer.ID, ServiceID: service.ID, EmployeeID: &me.ID, Quantity: 1, TotalAmount: 10, Status: models.OrderStatusAccepted}
	require.NoError(t, db.Create(&mine).Error)
	theirs := models.Order{CustomerID: customer.ID, ServiceID: service.ID, EmployeeID: &other.ID, Quantity: 1, TotalAmount: 10, Status: models.OrderStatusAccepted}
	require.NoError(t, db.Create(&theirs).Error)

	router := setupTestRouter()
	router.GET("/orders", mockAuthMiddleware(me.ID, middleware.RoleEmployee), GetEmployeeOrders)

	w := performJSON(t, router, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// The feed is canonical: no client-side merging or de-duplication needed
	data := parseResponse(t, w)["data"].([]interface{})
	ids := make([]float64, 0, len(data))
	for _, item := range data {
		ids = append(ids, item.(map[string]interface{})["id"].(float64))
	}
	assert.ElementsMatch(t, []float64{float64(pending.ID), float64(mine.ID)}, ids)
}

func TestUpdateEmployeeProfileEndpoint(t *testing.T) {
	db := setupTestDB(t)
	employee := createTestEmployee(t, db, "employee@example.com")
	createTestEmployee(t, db, "taken@example.com")

	router := setupTestRouter()
	router.PUT("/profile", mockAuthMiddleware(employee.ID, middleware.RoleEmployee), UpdateEmployeeProfile)

	t.Run("updates provided fields only", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPut, "/profile", map[string]interface{}{
			"name": "Renamed Worker",
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var reloaded models.Employee
		require.NoError(t, db.First(&reloaded, employee.ID).Error)
		assert.Equal(t, "Renamed Worker", reloaded.Name)
		assert.Equal(t, "employee@example.com", reloaded.Email)
	})

	t.Run("rejects an invalid phone", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPut, "/profile", map[string]interface{}{"phone": "123"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("changing to a taken email yields 409", func(t *testing.T) {
		w := performJSON(t, router, http.MethodPut, "/profile", map[string]interface{}{"email": "taken@example.com"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestGetEmployeeEarningsEndpoint(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "customer@example.com", 0)
	service := createTestService(t, db, "Dry Clean", 20)
	employee := createTestEmployee(t, db, "employee@example.com")
	require.NoError(t, db.Model(&models.Employee{}).Where("id = ?", employee.ID).
		Update("earnings_balance", 60.0).Error)

	completedAt := db.NowFunc()
	for _, amount := range []float64{20, 40} {
		order := models.Order{
			CustomerID:  customer.ID,
			ServiceID:   service.ID,
			EmployeeID:  &employee.ID,
			Quantity:    1,
			TotalAmount: amount,
			Status:      models.OrderStatusCompleted,
			CompletedAt: &completedAt,
		}
		require.NoError(t, db.Create(&order).Error)
	}

	router := setupTestRouter()
	router.GET("/earnings", mockAuthMiddleware(employee.ID, middleware.RoleEmployee), GetEmployeeEarnings)

	w := performJSON(t, router, http.MethodGet, "/earnings", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := parseResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(60), data["earnings_balance"])
	assert.Len(t, data["completed_orders"].([]interface{}), 2)
}

func TestGetEmployeeDashboardEndpoint(t *testing.T) {
	db := setupTestDB(t)
	customer := createTestCustomer(t, db, "customer@example.com", 500)
	service := createTestService(t, db, "Ironing", 10)
	employee := createTestEmployee(t, db, "employee@example.com")

	pending := models.Order{CustomerID: customer.ID, ServiceID: service.ID, Quantity: 1, TotalAmount: 10, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&pending).Error)
	inProgress := models.Order{CustomerID: customer.ID, ServiceID: service.ID, EmployeeID: &employee.ID, Quantity: 1, TotalAmount: 10, Status: models.OrderStatusAccepted}
	require.NoError(t, db.Create(&inProgress).Error)

	router := setupTestRouter()
	router.GET("/dashboard", mockAuthMiddleware(employee.ID, middleware.RoleEmployee), GetEmployeeDashboard)

	w := performJSON(t, router, http.MethodGet, "/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	assert.True(t, response["success"].(bool))

	stats := response["employee_stats"].(map[string]interface{})
	assert.Equal(t, float64(0), stats["completed_orders"])
	assert.Equal(t, float64(1), stats["orders_in_progress"])

	assert.Len(t, response["pending_orders"].([]interface{}), 1)
	assert.Len(t, response["current_work"].([]interface{}), 1)
}
