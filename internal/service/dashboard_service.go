package service

import (
	"context"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// DashboardService handles dashboard-related business logic
type DashboardService struct {
	transactionRepo domain.TransactionRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(transactionRepo domain.TransactionRepository) *DashboardService {
	return &DashboardService{transactionRepo: transactionRepo}
}

// GetSummary aggregates the caller's transactions dated within [start, end]
func (s *DashboardService) GetSummary(ctx context.Context, userID int32, start, end time.Time) (*domain.DashboardSummary, error) {
	period := domain.DateRange{Start: start, End: end}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	txs, err := s.transactionRepo.List(ctx, userID, period.Filters())
	if err != nil {
		log.Error().Err(err).Int32("user_id", userID).Msg("Failed to load dashboard transactions")
		txs = []*domain.Transaction{}
	}

	return domain.NewDashboardSummary(start, end, txs), nil
}
