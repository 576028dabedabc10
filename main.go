package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/laundryola/laundryola-api/config"
	"github.com/laundryola/laundryola-api/controllers"
	"github.com/laundryola/laundryola-api/middleware"
	"github.com/laundryola/laundryola-api/models"
)

func main() {
	// Basic logging
	log.Println("Starting LaundryOla API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Employee{},
		&models.Service{},
		&models.Order{},
		&models.WalletTransaction{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	router := setupRouter(cfg)

	// Start server
	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires middleware and all API routes
func setupRouter(cfg *config.Config) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	router.Use(middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	auth := middleware.RequireAuth(cfg)
	customerOnly := middleware.RequireRole(middleware.RoleCustomer)
	employeeOnly := middleware.RequireRole(middleware.RoleEmployee)

	api := router.Group("/api")
	{
		// Health check endpoint
		api.GET("/health", healthCheck)

		// Database status endpoint
		api.GET("/database/status", databaseStatus)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/customers/register", controllers.RegisterCustomer)
			authRoutes.POST("/customers/login", controllers.LoginCustomer)
			authRoutes.POST("/employees/register", controllers.RegisterEmployee)
			authRoutes.POST("/employees/login", controllers.LoginEmployee)
			authRoutes.POST("/logout", auth, controllers.Logout)
		}

		customers := api.Group("/customers", auth, customerOnly)
		{
			customers.GET("/profile", controllers.GetCustomerProfile)
			customers.GET("/dashboard", controllers.GetCustomerDashboard)
			customers.PUT("/profile", controllers.UpdateCustomerProfile)
			customers.POST("/wallet/add", controllers.AddMoney)
			customers.GET("/wallet/balance", controllers.GetWalletBalance)
			customers.GET("/transactions", controllers.GetTransactions)
			customers.GET("/orders", controllers.GetCustomerOrders)
		}

		employees := api.Group("/employees", auth, employeeOnly)
		{
			employees.GET("/dashboard", controllers.GetEmployeeDashboard)
			employees.GET("/orders", controllers.GetEmployeeOrders)
			employees.PUT("/profile", controllers.UpdateEmployeeProfile)
			employees.GET("/earnings", controllers.GetEmployeeEarnings)
		}

		servicesGroup := api.Group("/services")
		{
			servicesGroup.GET("", controllers.ListServices)
			servicesGroup.GET("/:id", controllers.GetService)
			servicesGroup.POST("", auth, employeeOnly, controllers.CreateService)
			servicesGroup.PUT("/:id", auth, employeeOnly, controllers.UpdateService)
			servicesGroup.DELETE("/:id", auth, employeeOnly, controllers.DeleteService)
		}

		orders := api.Group("/orders")
		{
			orders.POST("", auth, customerOnly, controllers.PlaceOrder)
			orders.GET("/pending", auth, employeeOnly, controllers.GetPendingOrders)
			orders.PUT("/:id/manage", auth, employeeOnly, controllers.ManageOrder)
			orders.GET("/:id", auth, controllers.GetOrder)
		}
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "LaundryOla API is running",
	})
}

// databaseStatus checks database connectivity
func databaseStatus(c *gin.Context) {
	db := config.GetDB()

	// Get the underlying SQL database to check connection
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to get database instance",
			"code":    http.StatusInternalServerError,
		})
		return
	}

	// Ping the database to verify connection
	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Database connection failed",
			"code":    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Database connected",
	})
}
