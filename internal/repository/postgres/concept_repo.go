package postgres

import (
	"context"
	"errors"

	"github.com/finanzas-app/finanzas-backend/db/sqlc"
	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConceptRepository implements domain.ConceptRepository using PostgreSQL
type ConceptRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewConceptRepository creates a new ConceptRepository
func NewConceptRepository(pool *pgxpool.Pool) *ConceptRepository {
	return &ConceptRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

func (r *ConceptRepository) List(ctx context.Context) ([]*domain.Concept, error) {
	rows, err := r.queries.ListConcepts(ctx)
	if err != nil {
		return nil, err
	}
	return sqlcConceptsToDomain(rows), nil
}

func (r *ConceptRepository) ListByCategory(ctx context.Context, categoryID int32) ([]*domain.Concept, error) {
	rows, err := r.queries.ListConceptsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return sqlcConceptsToDomain(rows), nil
}

func (r *ConceptRepository) GetByID(ctx context.Context, id int32) (*domain.Concept, error) {
	row, err := r.queries.GetConceptByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrConceptNotFound
		}
		return nil, err
	}
	return sqlcConceptToDomain(row), nil
}

// Upsert inserts a concept or refreshes it by (category, name)
func (r *ConceptRepository) Upsert(ctx context.Context, categoryID int32, name string, description *string) (*domain.Concept, error) {
	row, err := r.queries.UpsertConcept(ctx, sqlc.UpsertConceptParams{
		CategoryID:  categoryID,
		Name:        name,
		Description: stringPtrToPgText(description),
	})
	if err != nil {
		return nil, err
	}
	return sqlcConceptToDomain(row), nil
}

func sqlcConceptToDomain(c sqlc.Concept) *domain.Concept {
	return &domain.Concept{
		ID:          c.ID,
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: pgTextToStringPtr(c.Description),
		CreatedAt:   c.CreatedAt.Time,
		UpdatedAt:   c.UpdatedAt.Time,
	}
}

func sqlcConceptsToDomain(rows []sqlc.Concept) []*domain.Concept {
	result := make([]*domain.Concept, len(rows))
	for i, c := range rows {
		result[i] = sqlcConceptToDomain(c)
	}
	return result
}
