package postgres

import (
	"context"
	"errors"

	"github.com/finanzas-app/finanzas-backend/db/sqlc"
	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// List returns every category, income first
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.queries.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return sqlcCategoriesToDomain(rows), nil
}

// ListByType returns the categories of one transaction type
func (r *CategoryRepository) ListByType(ctx context.Context, txType domain.TransactionType) ([]*domain.Category, error) {
	rows, err := r.queries.ListCategoriesByType(ctx, string(txType))
	if err != nil {
		return nil, err
	}
	return sqlcCategoriesToDomain(rows), nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	row, err := r.queries.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return sqlcCategoryToDomain(row), nil
}

// Upsert inserts a category or refreshes it by name
func (r *CategoryRepository) Upsert(ctx context.Context, name string, txType domain.TransactionType, description *string) (*domain.Category, error) {
	row, err := r.queries.UpsertCategory(ctx, sqlc.UpsertCategoryParams{
		Name:        name,
		Type:        string(txType),
		Description: stringPtrToPgText(description),
	})
	if err != nil {
		return nil, err
	}
	return sqlcCategoryToDomain(row), nil
}

func sqlcCategoryToDomain(c sqlc.Category) *domain.Category {
	return &domain.Category{
		ID:          c.ID,
		Name:        c.Name,
		Type:        domain.TransactionType(c.Type),
		Description: pgTextToStringPtr(c.Description),
		CreatedAt:   c.CreatedAt.Time,
		UpdatedAt:   c.UpdatedAt.Time,
	}
}

func sqlcCategoriesToDomain(rows []sqlc.Category) []*domain.Category {
	result := make([]*domain.Category, len(rows))
	for i, c := range rows {
		result[i] = sqlcCategoryToDomain(c)
	}
	return result
}
