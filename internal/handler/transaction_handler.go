package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"mywallet/internal/errors"
	"mywallet/internal/middleware"
	"mywallet/internal/model"
	"mywallet/internal/service"
)

// TransactionHandler handles the ledger endpoints.
type TransactionHandler struct {
	ledgerService service.LedgerService
}

// NewTransactionHandler creates a new transaction handler.
func NewTransactionHandler(ledgerService service.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// TransactionRequest represents a new ledger entry.
type TransactionRequest struct {
	Type        string  `json:"type" validate:"required,oneof=credit debit"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
}

// TransactionsResponse carries a user's full history and derived balance.
type TransactionsResponse struct {
	UserTransactions []model.Transaction `json:"userTransactions"`
	UserBalance      decimal.Decimal     `json:"userBalance"`
}

// List godoc
// @Summary List the user's transactions and balance
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} TransactionsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	userID := middleware.UserID(c)

	transactions, balance, err := h.ledgerService.List(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if transactions == nil {
		transactions = []model.Transaction{}
	}

	return c.JSON(http.StatusOK, TransactionsResponse{
		UserTransactions: transactions,
		UserBalance:      balance,
	})
}

// Add godoc
// @Summary Append a transaction to the ledger
// @Tags transactions
// @Accept json
// @Security BearerAuth
// @Param request body TransactionRequest true "Transaction data"
// @Success 201
// @Failure 401 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /transactions [post]
func (h *TransactionHandler) Add(c echo.Context) error {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	userID := middleware.UserID(c)
	amount := decimal.NewFromFloat(req.Amount)

	if _, err := h.ledgerService.Add(c.Request().Context(), userID, model.TransactionType(req.Type), amount, req.Description); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.NoContent(http.StatusCreated)
}
