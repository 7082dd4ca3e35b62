package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"mywallet/internal/auth"
	"mywallet/internal/config"
	"mywallet/internal/handler"
	appmiddleware "mywallet/internal/middleware"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	sessions auth.SessionRegistry,
	authHandler *handler.AuthHandler,
	transactionHandler *handler.TransactionHandler,
	sessionHandler *handler.SessionHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.ContextTimeout(cfg.RequestTimeout))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// Logout checks only for header presence, not token validity,
	// so it stays outside the auth gate.
	e.DELETE("/sessions", sessionHandler.Logout)

	// Ledger routes behind the auth gate
	ledger := e.Group("/transactions", appmiddleware.AuthGate(sessions))
	ledger.GET("", transactionHandler.List)
	ledger.POST("", transactionHandler.Add)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
