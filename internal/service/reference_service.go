package service

import (
	"context"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// ReferenceService serves the category and concept taxonomy
type ReferenceService struct {
	categoryRepo domain.CategoryRepository
	conceptRepo  domain.ConceptRepository
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(categoryRepo domain.CategoryRepository, conceptRepo domain.ConceptRepository) *ReferenceService {
	return &ReferenceService{
		categoryRepo: categoryRepo,
		conceptRepo:  conceptRepo,
	}
}

// ListCategories returns all categories, or those of one type.
// Storage failures degrade to an empty list.
func (s *ReferenceService) ListCategories(ctx context.Context, txType *domain.TransactionType) []*domain.Category {
	var (
		categories []*domain.Category
		err        error
	)
	if txType != nil {
		categories, err = s.categoryRepo.ListByType(ctx, *txType)
	} else {
		categories, err = s.categoryRepo.List(ctx)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		return []*domain.Category{}
	}
	return categories
}

// GetCategory returns one category
func (s *ReferenceService) GetCategory(ctx context.Context, id int32) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

// ListConcepts returns all concepts, or those of one category.
// Storage failures degrade to an empty list.
func (s *ReferenceService) ListConcepts(ctx context.Context, categoryID *int32) []*domain.Concept {
	var (
		concepts []*domain.Concept
		err      error
	)
	if categoryID != nil {
		concepts, err = s.conceptRepo.ListByCategory(ctx, *categoryID)
	} else {
		concepts, err = s.conceptRepo.List(ctx)
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list concepts")
		return []*domain.Concept{}
	}
	return concepts
}

// GetConcept returns one concept
func (s *ReferenceService) GetConcept(ctx context.Context, id int32) (*domain.Concept, error) {
	return s.conceptRepo.GetByID(ctx, id)
}

// Names resolves display names for categories and concepts.
// Missing reference data yields empty maps so callers fall back to raw ids.
func (s *ReferenceService) Names(ctx context.Context) (categories, concepts map[int32]string) {
	return domain.CategoryNames(s.ListCategories(ctx, nil)), domain.ConceptNames(s.ListConcepts(ctx, nil))
}
