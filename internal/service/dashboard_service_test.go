package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/testutil"
)

func seedTransactions(repo *testutil.MockTransactionRepository, userID int32, items ...domain.Transaction) {
	for i := range items {
		tx := items[i]
		tx.ID = repo.NextID
		tx.UserID = userID
		tx.SetDate(tx.Date)
		if tx.Content == "" {
			tx.Content = "movimiento"
		}
		repo.AddTransaction(&tx)
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}

func TestDashboardSummary_Totals(t *testing.T) {
	txRepo := testutil.NewMockTransactionRepository()
	seedTransactions(txRepo, 1,
		domain.Transaction{Date: day(2025, 1, 5), Type: domain.TransactionTypeIngreso, CategoryID: 1, ConceptID: 1, Amount: 100000},
		domain.Transaction{Date: day(2025, 1, 6), Type: domain.TransactionTypeEgreso, CategoryID: 2, ConceptID: 2, Amount: 30000},
		domain.Transaction{Date: day(2025, 3, 1), Type: domain.TransactionTypeEgreso, CategoryID: 2, ConceptID: 2, Amount: 99999},
	)
	seedTransactions(txRepo, 2,
		domain.Transaction{Date: day(2025, 1, 7), Type: domain.TransactionTypeIngreso, CategoryID: 1, ConceptID: 1, Amount: 5000},
	)
	service := NewDashboardService(txRepo)

	summary, err := service.GetSummary(context.Background(), 1, day(2025, 1, 1), day(2025, 1, 31))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if summary.TransactionCount != 2 {
		t.Errorf("Expected 2 transactions, got %d", summary.TransactionCount)
	}
	if summary.Totals.Income.Display != "$1,000.00" {
		t.Errorf("Expected income $1,000.00, got %s", summary.Totals.Income.Display)
	}
	if summary.Totals.Expense.Display != "$300.00" {
		t.Errorf("Expected expense $300.00, got %s", summary.Totals.Expense.Display)
	}
	if summary.Totals.Net.Display != "$700.00" {
		t.Errorf("Expected net $700.00, got %s", summary.Totals.Net.Display)
	}
	if len(summary.Chart) != 2 {
		t.Errorf("Expected 2 chart points, got %d", len(summary.Chart))
	}
	if len(summary.Recent) != 2 || summary.Recent[0].Amount != 30000 {
		t.Errorf("Expected newest transaction first, got %v", summary.Recent)
	}
}

func TestDashboardSummary_InvalidRange(t *testing.T) {
	service := NewDashboardService(testutil.NewMockTransactionRepository())

	_, err := service.GetSummary(context.Background(), 1, day(2025, 2, 1), day(2025, 1, 1))
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Errorf("Expected ErrInvalidDateRange, got %v", err)
	}
}

func TestDashboardSummary_StorageUnavailable(t *testing.T) {
	txRepo := testutil.NewMockTransactionRepository()
	txRepo.ListErr = domain.ErrStorageUnavailable
	service := NewDashboardService(txRepo)

	summary, err := service.GetSummary(context.Background(), 1, day(2025, 1, 1), day(2025, 1, 31))
	if err != nil {
		t.Fatalf("Expected degraded summary, got %v", err)
	}
	if summary.TransactionCount != 0 || summary.Totals.Net.Cents != 0 {
		t.Errorf("Expected empty summary, got %+v", summary)
	}
	if summary.Recent == nil {
		t.Error("Expected non-nil recent list")
	}
}
