package postgres

import (
	"context"
	"errors"

	"github.com/finanzas-app/finanzas-backend/db/sqlc"
	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// Create inserts a transaction for its owner
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	created, err := r.queries.CreateTransaction(ctx, sqlc.CreateTransactionParams{
		UserID:     tx.UserID,
		Date:       timeToPgTimestamptz(tx.Date),
		Month:      tx.Month,
		Year:       tx.Year,
		Type:       string(tx.Type),
		CategoryID: tx.CategoryID,
		ConceptID:  tx.ConceptID,
		Amount:     tx.Amount,
		Content:    tx.Content,
		Comment:    stringPtrToPgText(tx.Comment),
	})
	if err != nil {
		return nil, err
	}
	return sqlcTransactionToDomain(created), nil
}

// GetByID retrieves a transaction owned by userID
func (r *TransactionRepository) GetByID(ctx context.Context, userID, id int32) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByID(ctx, sqlc.GetTransactionByIDParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return sqlcTransactionToDomain(row), nil
}

// List returns the user's transactions matching filters, newest first
func (r *TransactionRepository) List(ctx context.Context, userID int32, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	params := sqlc.ListTransactionsByUserParams{UserID: userID}
	if filters != nil {
		if filters.Type != nil {
			params.Type = pgtype.Text{String: string(*filters.Type), Valid: true}
		}
		params.CategoryID = int32PtrToPgInt4(filters.CategoryID)
		params.ConceptID = int32PtrToPgInt4(filters.ConceptID)
		params.ConceptIds = filters.ConceptIDs
		params.Month = int32PtrToPgInt4(filters.Month)
		params.Year = int32PtrToPgInt4(filters.Year)
		if filters.HasDateRange() {
			params.StartDate = timePtrToPgTimestamptz(filters.StartDate)
			params.EndDate = timePtrToPgTimestamptz(filters.EndDate)
		}
	}

	rows, err := r.queries.ListTransactionsByUser(ctx, params)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Transaction, len(rows))
	for i, row := range rows {
		result[i] = sqlcTransactionToDomain(row)
	}
	return result, nil
}

// Update overwrites every mutable field of an owned transaction
func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	updated, err := r.queries.UpdateTransaction(ctx, sqlc.UpdateTransactionParams{
		ID:         tx.ID,
		UserID:     tx.UserID,
		Date:       timeToPgTimestamptz(tx.Date),
		Month:      tx.Month,
		Year:       tx.Year,
		Type:       string(tx.Type),
		CategoryID: tx.CategoryID,
		ConceptID:  tx.ConceptID,
		Amount:     tx.Amount,
		Content:    tx.Content,
		Comment:    stringPtrToPgText(tx.Comment),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return sqlcTransactionToDomain(updated), nil
}

// Delete removes an owned transaction
func (r *TransactionRepository) Delete(ctx context.Context, userID, id int32) error {
	affected, err := r.queries.DeleteTransaction(ctx, sqlc.DeleteTransactionParams{
		ID:     id,
		UserID: userID,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func sqlcTransactionToDomain(t sqlc.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:         t.ID,
		UserID:     t.UserID,
		Date:       t.Date.Time,
		Month:      t.Month,
		Year:       t.Year,
		Type:       domain.TransactionType(t.Type),
		CategoryID: t.CategoryID,
		ConceptID:  t.ConceptID,
		Amount:     t.Amount,
		Content:    t.Content,
		Comment:    pgTextToStringPtr(t.Comment),
		CreatedAt:  t.CreatedAt.Time,
		UpdatedAt:  t.UpdatedAt.Time,
	}
}
