package http

import (
	"log/slog"
	"net/http"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Product commands
	CreatePhysicalProduct  commands.CreatePhysicalProductCommandHandler
	CreateDigitalProduct   commands.CreateDigitalProductCommandHandler
	UpdateProduct          commands.UpdateProductCommandHandler
	ChangeProductPrice     commands.ChangeProductPriceCommandHandler
	RestockProduct         commands.RestockProductCommandHandler
	SetProductAvailability commands.SetProductAvailabilityCommandHandler
	DeleteProduct          commands.DeleteProductCommandHandler

	// User commands
	RegisterCustomer   commands.RegisterCustomerCommandHandler
	RegisterAdmin      commands.RegisterAdminCommandHandler
	UpdateUser         commands.UpdateUserCommandHandler
	ChangeUserEmail    commands.ChangeUserEmailCommandHandler
	ChangeUserPassword commands.ChangeUserPasswordCommandHandler
	SetUserActive      commands.SetUserActiveCommandHandler
	DeleteUser         commands.DeleteUserCommandHandler

	// Order commands
	CreateOrder     commands.CreateOrderCommandHandler
	AddOrderItem    commands.AddOrderItemCommandHandler
	RemoveOrderItem commands.RemoveOrderItemCommandHandler
	ApplyDiscount   commands.ApplyDiscountCommandHandler
	AdvanceOrder    commands.AdvanceOrderCommandHandler
	CancelOrder     commands.CancelOrderCommandHandler

	// Queries
	GetProduct      queries.GetProductQueryHandler
	ListProducts    queries.ListProductsQueryHandler
	GetDownloadLink queries.GetDownloadLinkQueryHandler
	GetUser         queries.GetUserQueryHandler
	ListUsers       queries.ListUsersQueryHandler
	Authenticate    queries.AuthenticateUserQueryHandler
	GetOrder        queries.GetOrderQueryHandler
	ListOrders      queries.ListOrdersQueryHandler
	GetStatistics   queries.GetStatisticsQueryHandler
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// NewRouter builds the echo instance with middleware, API routes and documentation.
func NewRouter(server *Server, doc *openapi3.T, logger *slog.Logger) *echo.Echo {
	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.HTTPErrorHandler = newErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(c.Request().Context(), level, "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/openapi.json")))

	RegisterHandlers(e.Group("/api/v1"), server)
	return e
}

// RegisterHandlers adds every API route to the router.
func RegisterHandlers(router *echo.Group, s *Server) {
	router.GET("/products", s.ListProducts)
	router.POST("/products/physical", s.CreatePhysicalProduct)
	router.POST("/products/digital", s.CreateDigitalProduct)
	router.GET("/products/:id", s.GetProduct)
	router.PUT("/products/:id", s.UpdateProduct)
	router.DELETE("/products/:id", s.DeleteProduct)
	router.PUT("/products/:id/price", s.ChangeProductPrice)
	router.POST("/products/:id/restock", s.RestockProduct)
	router.PUT("/products/:id/availability", s.SetProductAvailability)
	router.GET("/products/:id/download-link", s.GetDownloadLink)

	router.GET("/users", s.ListUsers)
	router.GET("/users/by-email", s.GetUserByEmail)
	router.POST("/users/customers", s.RegisterCustomer)
	router.POST("/users/admins", s.RegisterAdmin)
	router.GET("/users/:id", s.GetUser)
	router.PATCH("/users/:id", s.UpdateUser)
	router.DELETE("/users/:id", s.DeleteUser)
	router.PUT("/users/:id/email", s.ChangeUserEmail)
	router.PUT("/users/:id/password", s.ChangeUserPassword)
	router.PUT("/users/:id/active", s.SetUserActive)
	router.POST("/auth/login", s.Login)

	router.GET("/orders", s.ListOrders)
	router.POST("/orders", s.CreateOrder)
	router.GET("/orders/:id", s.GetOrder)
	router.POST("/orders/:id/items", s.AddOrderItem)
	router.DELETE("/orders/:id/items/:line", s.RemoveOrderItem)
	router.POST("/orders/:id/discount", s.ApplyDiscount)
	router.POST("/orders/:id/status", s.AdvanceOrder)
	router.POST("/orders/:id/cancel", s.CancelOrder)

	router.GET("/statistics", s.GetStatistics)
}

type createdResponse struct {
	ID int64 `json:"id"`
}

type changedResponse struct {
	Changed bool `json:"changed"`
}

type toggleRequest struct {
	Value bool `json:"value"`
}

// GetStatistics handles GET /api/v1/statistics.
func (s *Server) GetStatistics(ctx echo.Context) error {
	stats, err := s.h.GetStatistics.Handle(ctx.Request().Context(), queries.NewGetStatisticsQuery())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, stats)
}
