package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/laundryola/laundryola-api/config"
	"github.com/laundryola/laundryola-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Employee{},
		&models.Service{},
		&models.Order{},
		&models.WalletTransaction{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	config.SetConfig(&config.Config{
		GoEnv:              "test",
		JWTSecret:          "test-secret",
		TokenTTLHours:      24,
		WalletDepositLimit: 10000,
		BcryptRounds:       4,
	})
	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// mockAuthMiddleware injects an authenticated identity into the context the
// same way the real RequireAuth middleware does
func mockAuthMiddleware(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

func createTestCustomer(t *testing.T, db *gorm.DB, email string, balance float64) *models.Customer {
	t.Helper()
	customer := models.Customer{
		Name:          "Test Customer",
		Phone:         "1234567890",
		Email:         email,
		PasswordHash:  "hashed",
		Address:       "12 Laundry Lane",
		WalletBalance: balance,
	}
	require.NoError(t, db.Create(&customer).Error)
	return &customer
}

func createTestEmployee(t *testing.T, db *gorm.DB, email string) *models.Employee {
	t.Helper()
	employee := models.Employee{
		Name:         "Test Employee",
		Phone:        "0987654321",
		Email:        email,
		PasswordHash: "hashed",
	}
	require.NoError(t, db.Create(&employee).Error)
	return &employee
}

func createTestService(t *testing.T, db *gorm.DB, name string, price float64) *models.Service {
	t.Helper()
	service := models.Service{Name: name, PricePerItem: price}
	require.NoError(t, db.Create(&service).Error)
	return &service
}
