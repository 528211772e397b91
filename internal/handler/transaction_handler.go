package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/middleware"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/finanzas-app/finanzas-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the create transaction request body.
// Amount is in cents. Any userId sent by the client is ignored.
type CreateTransactionRequest struct {
	Date       string  `json:"date"`
	Type       string  `json:"type"`
	CategoryID *int32  `json:"categoryId"`
	ConceptID  *int32  `json:"conceptId"`
	Amount     *int64  `json:"amount"`
	Content    string  `json:"content"`
	Comment    *string `json:"comment,omitempty"`
}

// UpdateTransactionRequest is a partial patch; omitted fields are unchanged
type UpdateTransactionRequest struct {
	Date       *string `json:"date,omitempty"`
	Type       *string `json:"type,omitempty"`
	CategoryID *int32  `json:"categoryId,omitempty"`
	ConceptID  *int32  `json:"conceptId,omitempty"`
	Amount     *int64  `json:"amount,omitempty"`
	Content    *string `json:"content,omitempty"`
	Comment    *string `json:"comment,omitempty"`
}

// TransactionResponse represents a transaction in API responses
type TransactionResponse struct {
	ID            int32   `json:"id"`
	UserID        int32   `json:"userId"`
	Date          string  `json:"date"`
	Month         int32   `json:"month"`
	Year          int32   `json:"year"`
	Type          string  `json:"type"`
	CategoryID    int32   `json:"categoryId"`
	ConceptID     int32   `json:"conceptId"`
	Amount        int64   `json:"amount"`
	AmountDisplay string  `json:"amountDisplay"`
	Content       string  `json:"content"`
	Comment       *string `json:"comment"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// GetTransactions godoc
// @Summary List transactions
// @Description List the caller's transactions, newest first. The date range applies only when both bounds are given.
// @Tags transactions
// @Produce json
// @Param type query string false "ingreso or egreso"
// @Param categoryId query int false "Category ID"
// @Param conceptId query int false "Concept ID"
// @Param conceptIds query string false "Comma separated concept IDs"
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Param startDate query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param endDate query string false "End date (YYYY-MM-DD covers the whole day)"
// @Success 200 {array} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Router /transactions [get]
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Please login")
	}

	filters, errs := parseTransactionFilters(c)
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid filters", errs)
	}

	txs := h.transactionService.ListTransactions(c.Request().Context(), userID, filters)

	response := make([]TransactionResponse, len(txs))
	for i, tx := range txs {
		response[i] = toTransactionResponse(tx)
	}
	return c.JSON(http.StatusOK, response)
}

// GetTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Please login")
	}

	id, err := parseInt32Param(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	tx, err := h.transactionService.GetTransaction(c.Request().Context(), userID, id)
	if err != nil {
		return respondServiceError(c, err, domain.ErrTransactionNotFound.Error())
	}
	return c.JSON(http.StatusOK, toTransactionResponse(tx))
}

// CreateTransaction godoc
// @Summary Create a transaction
// @Description Create an ingreso or egreso for the caller. Month and year are derived from the date.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "Transaction creation request"
// @Success 201 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Please login")
	}

	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.CreateTransactionInput{
		Type:       req.Type,
		CategoryID: req.CategoryID,
		ConceptID:  req.ConceptID,
		Amount:     req.Amount,
		Content:    req.Content,
		Comment:    req.Comment,
	}
	if strings.TrimSpace(req.Date) != "" {
		date, err := util.ParseDate(strings.TrimSpace(req.Date))
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "date", Message: "Must be YYYY-MM-DD or RFC3339"},
			})
		}
		input.Date = &date
	}

	tx, err := h.transactionService.CreateTransaction(c.Request().Context(), userID, input)
	if err != nil {
		return respondServiceError(c, err, domain.ErrTransactionNotFound.Error())
	}
	return c.JSON(http.StatusCreated, toTransactionResponse(tx))
}

// UpdateTransaction godoc
// @Summary Update a transaction
// @Description Apply a partial update to one of the caller's transactions
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param request body UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} TransactionResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /transactions/{id} [patch]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Please login")
	}

	id, err := parseInt32Param(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	var req UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input := service.UpdateTransactionInput{
		Type:       req.Type,
		CategoryID: req.CategoryID,
		ConceptID:  req.ConceptID,
		Amount:     req.Amount,
		Content:    req.Content,
		Comment:    req.Comment,
	}
	if req.Date != nil {
		date, err := util.ParseDate(strings.TrimSpace(*req.Date))
		if err != nil {
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "date", Message: "Must be YYYY-MM-DD or RFC3339"},
			})
		}
		input.Date = &date
	}

	tx, err := h.transactionService.UpdateTransaction(c.Request().Context(), userID, id, input)
	if err != nil {
		return respondServiceError(c, err, domain.ErrTransactionNotFound.Error())
	}
	return c.JSON(http.StatusOK, toTransactionResponse(tx))
}

// DeleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Param id path int true "Transaction ID"
// @Success 204
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		return NewUnauthorizedError(c, "Please login")
	}

	id, err := parseInt32Param(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	if err := h.transactionService.DeleteTransaction(c.Request().Context(), userID, id); err != nil {
		return respondServiceError(c, err, domain.ErrTransactionNotFound.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func parseTransactionFilters(c echo.Context) (*domain.TransactionFilters, []ValidationError) {
	filters := &domain.TransactionFilters{}
	var errs []ValidationError

	if raw := c.QueryParam("type"); raw != "" {
		txType, err := domain.ParseTransactionType(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "type", Message: err.Error()})
		} else {
			filters.Type = &txType
		}
	}

	for _, p := range []struct {
		name   string
		target **int32
	}{
		{"categoryId", &filters.CategoryID},
		{"conceptId", &filters.ConceptID},
		{"month", &filters.Month},
		{"year", &filters.Year},
	} {
		v, verr := optionalInt32Query(c, p.name)
		if verr != nil {
			errs = append(errs, *verr)
			continue
		}
		*p.target = v
	}
	if filters.Month != nil && (*filters.Month < 1 || *filters.Month > 12) {
		errs = append(errs, ValidationError{Field: "month", Message: "Must be between 1 and 12"})
	}

	ids, err := parseIDList(c.QueryParam("conceptIds"))
	if err != nil {
		errs = append(errs, ValidationError{Field: "conceptIds", Message: "Must be a comma separated list of integers"})
	}
	filters.ConceptIDs = ids

	if raw := c.QueryParam("startDate"); raw != "" {
		t, err := parseStartDate(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "startDate", Message: "Must be YYYY-MM-DD or RFC3339"})
		} else {
			filters.StartDate = &t
		}
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		t, err := parseEndDate(raw)
		if err != nil {
			errs = append(errs, ValidationError{Field: "endDate", Message: "Must be YYYY-MM-DD or RFC3339"})
		} else {
			filters.EndDate = &t
		}
	}

	return filters, errs
}

func toTransactionResponse(tx *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            tx.ID,
		UserID:        tx.UserID,
		Date:          tx.Date.UTC().Format(time.RFC3339),
		Month:         tx.Month,
		Year:          tx.Year,
		Type:          string(tx.Type),
		CategoryID:    tx.CategoryID,
		ConceptID:     tx.ConceptID,
		Amount:        tx.Amount,
		AmountDisplay: domain.FormatCents(tx.Amount),
		Content:       tx.Content,
		Comment:       tx.Comment,
		CreatedAt:     tx.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     tx.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
