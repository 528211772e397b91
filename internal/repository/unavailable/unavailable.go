// Package unavailable provides the store used when PostgreSQL is not
// configured or cannot be reached. Every call fails with
// domain.ErrStorageUnavailable so services can degrade reads and reject
// writes.
package unavailable

import (
	"context"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
)

type UserRepository struct{}

func (UserRepository) GetByID(context.Context, int32) (*domain.User, error) {
	return nil, domain.ErrStorageUnavailable
}

func (UserRepository) GetByOpenID(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrStorageUnavailable
}

func (UserRepository) Upsert(context.Context, *domain.UpsertUserInput) (*domain.User, error) {
	return nil, domain.ErrStorageUnavailable
}

type CategoryRepository struct{}

func (CategoryRepository) List(context.Context) ([]*domain.Category, error) {
	return nil, domain.ErrStorageUnavailable
}

func (CategoryRepository) ListByType(context.Context, domain.TransactionType) ([]*domain.Category, error) {
	return nil, domain.ErrStorageUnavailable
}

func (CategoryRepository) GetByID(context.Context, int32) (*domain.Category, error) {
	return nil, domain.ErrStorageUnavailable
}

func (CategoryRepository) Upsert(context.Context, string, domain.TransactionType, *string) (*domain.Category, error) {
	return nil, domain.ErrStorageUnavailable
}

type ConceptRepository struct{}

func (ConceptRepository) List(context.Context) ([]*domain.Concept, error) {
	return nil, domain.ErrStorageUnavailable
}

func (ConceptRepository) ListByCategory(context.Context, int32) ([]*domain.Concept, error) {
	return nil, domain.ErrStorageUnavailable
}

func (ConceptRepository) GetByID(context.Context, int32) (*domain.Concept, error) {
	return nil, domain.ErrStorageUnavailable
}

func (ConceptRepository) Upsert(context.Context, int32, string, *string) (*domain.Concept, error) {
	return nil, domain.ErrStorageUnavailable
}

type TransactionRepository struct{}

func (TransactionRepository) Create(context.Context, *domain.Transaction) (*domain.Transaction, error) {
	return nil, domain.ErrStorageUnavailable
}

func (TransactionRepository) GetByID(context.Context, int32, int32) (*domain.Transaction, error) {
	return nil, domain.ErrStorageUnavailable
}

func (TransactionRepository) List(context.Context, int32, *domain.TransactionFilters) ([]*domain.Transaction, error) {
	return nil, domain.ErrStorageUnavailable
}

func (TransactionRepository) Update(context.Context, *domain.Transaction) (*domain.Transaction, error) {
	return nil, domain.ErrStorageUnavailable
}

func (TransactionRepository) Delete(context.Context, int32, int32) error {
	return domain.ErrStorageUnavailable
}

var (
	_ domain.UserRepository        = UserRepository{}
	_ domain.CategoryRepository    = CategoryRepository{}
	_ domain.ConceptRepository     = ConceptRepository{}
	_ domain.TransactionRepository = TransactionRepository{}
)
