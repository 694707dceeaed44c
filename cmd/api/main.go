package main

import (
	"os"

	"oficinapro/cmd/internal/domain/sqlite"
	"oficinapro/cmd/internal/domain/sqlite/repository"
	"oficinapro/cmd/internal/routes"
	"oficinapro/cmd/internal/service"
	"oficinapro/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	validate := validator.New()
	registerValidators(validate)

	err := godotenv.Load()
	if err != nil {
		log.Fatal("failed to load .env file", err)
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		log.Fatal("failed to initialize database", err)
	}

	// Getting repositories
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	productRepo := repository.NewProductRepository(db)
	movementRepo := repository.NewMovementRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, validate)
	clientService := service.NewClientService(clientRepo, userRepo, validate)
	orderService := service.NewOrderService(orderRepo, clientRepo, userRepo, validate)
	scheduleService := service.NewScheduleService(scheduleRepo, clientRepo, userRepo, validate)
	stockService := service.NewStockService(productRepo, movementRepo, orderRepo, userRepo, validate)

	// Getting routes
	userRoutes := routes.NewUserDefault(userService)
	clientRoutes := routes.NewClientDefault(clientService)
	orderRoutes := routes.NewOrderDefault(orderService)
	scheduleRoutes := routes.NewScheduleDefault(scheduleService)
	stockRoutes := routes.NewStockDefault(stockService)

	e := echo.New()
	e.Use(middleware.CORS())

	// Users
	e.POST("/api/users", userRoutes.Register)
	e.POST("/api/users/login", userRoutes.Login)
	e.GET("/api/users/@me", userRoutes.GetMe)

	// Clients
	e.GET("/api/clients", clientRoutes.GetClients)
	e.POST("/api/clients", clientRoutes.CreateClient)
	e.PUT("/api/clients/:id", clientRoutes.UpdateClient)
	e.DELETE("/api/clients/:id", clientRoutes.DeleteClient)

	// Service orders
	e.GET("/api/orders", orderRoutes.GetOrders)
	e.POST("/api/orders", orderRoutes.CreateOrder)
	e.PUT("/api/orders/:id", orderRoutes.UpdateOrder)
	e.DELETE("/api/orders/:id", orderRoutes.DeleteOrder)

	// Schedules
	e.GET("/api/schedules", scheduleRoutes.GetSchedules)
	e.POST("/api/schedules", scheduleRoutes.CreateSchedule)
	e.PUT("/api/schedules/:id", scheduleRoutes.UpdateSchedule)
	e.DELETE("/api/schedules/:id", scheduleRoutes.DeleteSchedule)

	// Products and the stock ledger
	e.GET("/api/products", stockRoutes.GetProducts)
	e.POST("/api/products", stockRoutes.CreateProduct)
	e.PUT("/api/products/:id", stockRoutes.UpdateProduct)
	e.DELETE("/api/products/:id", stockRoutes.DeleteProduct)
	e.POST("/api/products/:id/adjust", stockRoutes.AdjustStock)
	e.GET("/api/products/:id/movements", stockRoutes.GetProductMovements)
	e.GET("/api/movements", stockRoutes.GetMovements)

	port := os.Getenv("PORT")
	if port == "" {
		port = "6060"
	}

	err = e.Start(":" + port)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func registerValidators(validate *validator.Validate) {
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("nospaces", validators.NoWhiteSpaces)
	_ = validate.RegisterValidation("ymd", validators.IsYMD)
	_ = validate.RegisterValidation("hhmm", validators.IsHHMM)
}
