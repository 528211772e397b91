package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/middleware"
	"github.com/finanzas-app/finanzas-backend/internal/service"
	"github.com/finanzas-app/finanzas-backend/internal/testutil"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addTransaction(repo *testutil.MockTransactionRepository, id, userID int32, txType domain.TransactionType, date time.Time, categoryID, conceptID int32, amount int64) {
	tx := &domain.Transaction{
		ID: id, UserID: userID, Type: txType,
		CategoryID: categoryID, ConceptID: conceptID,
		Amount: amount, Content: "movimiento",
	}
	tx.SetDate(date)
	repo.AddTransaction(tx)
}

func TestDashboardGetSummary_Success(t *testing.T) {
	e := echo.New()
	txRepo := testutil.NewMockTransactionRepository()
	handler := NewDashboardHandler(service.NewDashboardService(txRepo))

	addTransaction(txRepo, 1, 1, domain.TransactionTypeIngreso, time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC), 1, 1, 100000)
	addTransaction(txRepo, 2, 1, domain.TransactionTypeEgreso, time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC), 2, 2, 30000)
	addTransaction(txRepo, 3, 2, domain.TransactionTypeIngreso, time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC), 1, 1, 999999)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary?startDate=2025-01-01&endDate=2025-01-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetUser(c, &domain.User{ID: 1})

	require.NoError(t, handler.GetSummary(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		TransactionCount int               `json:"transactionCount"`
		Totals           domain.TotalsView `json:"totals"`
		Chart            []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"chart"`
		Recent []TransactionResponse `json:"recent"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, 2, response.TransactionCount)
	assert.Equal(t, "$1,000.00", response.Totals.Income.Display)
	assert.Equal(t, "$300.00", response.Totals.Expense.Display)
	assert.Equal(t, "$700.00", response.Totals.Net.Display)
	require.Len(t, response.Chart, 2)
	assert.Equal(t, "Ingresos", response.Chart[0].Name)
	assert.Equal(t, "1000", response.Chart[0].Value)
	assert.Equal(t, "Egresos", response.Chart[1].Name)
	assert.Equal(t, "300", response.Chart[1].Value)
	require.Len(t, response.Recent, 2)
	assert.Equal(t, int32(2), response.Recent[0].ID)
}

func TestDashboardGetSummary_DefaultsToLastMonth(t *testing.T) {
	e := echo.New()
	txRepo := testutil.NewMockTransactionRepository()
	handler := NewDashboardHandler(service.NewDashboardService(txRepo))

	fixed := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	original := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = original })

	addTransaction(txRepo, 1, 1, domain.TransactionTypeIngreso, fixed.AddDate(0, 0, -10), 1, 1, 500)
	addTransaction(txRepo, 2, 1, domain.TransactionTypeIngreso, fixed.AddDate(0, -2, 0), 1, 1, 700)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetUser(c, &domain.User{ID: 1})

	require.NoError(t, handler.GetSummary(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response domain.DashboardSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 1, response.TransactionCount)
	assert.Equal(t, int64(500), response.Totals.Income.Cents)
}

func TestDashboardGetSummary_EmptyRange(t *testing.T) {
	e := echo.New()
	handler := NewDashboardHandler(service.NewDashboardService(testutil.NewMockTransactionRepository()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary?startDate=2025-01-01&endDate=2025-01-31", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetUser(c, &domain.User{ID: 1})

	require.NoError(t, handler.GetSummary(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var response domain.DashboardSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 0, response.TransactionCount)
	assert.Equal(t, "$0.00", response.Totals.Net.Display)
	assert.Empty(t, response.Recent)
}

func TestDashboardGetSummary_InvalidRange(t *testing.T) {
	e := echo.New()
	handler := NewDashboardHandler(service.NewDashboardService(testutil.NewMockTransactionRepository()))

	for _, query := range []string{
		"startDate=2025-02-01&endDate=2025-01-01",
		"startDate=nope",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary?"+query, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		middleware.SetUser(c, &domain.User{ID: 1})

		require.NoError(t, handler.GetSummary(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, query)
	}
}

func TestDashboardGetSummary_Unauthorized(t *testing.T) {
	e := echo.New()
	handler := NewDashboardHandler(service.NewDashboardService(testutil.NewMockTransactionRepository()))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetSummary(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
