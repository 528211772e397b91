package service

import (
	"context"
	"fmt"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// SeedResult counts the rows written by a seed run
type SeedResult struct {
	Categories int `json:"categories"`
	Concepts   int `json:"concepts"`
}

// SeedService loads the reference taxonomy. Running it twice leaves the
// same rows in place.
type SeedService struct {
	categoryRepo   domain.CategoryRepository
	conceptRepo    domain.ConceptRepository
	catalog        []domain.CatalogCategory
	eventPublisher websocket.EventPublisher
}

// NewSeedService creates a SeedService for domain.DefaultCatalog
func NewSeedService(categoryRepo domain.CategoryRepository, conceptRepo domain.ConceptRepository) *SeedService {
	return &SeedService{
		categoryRepo: categoryRepo,
		conceptRepo:  conceptRepo,
		catalog:      domain.DefaultCatalog,
	}
}

// SetEventPublisher sets the event publisher for change notifications
func (s *SeedService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// Seed upserts every catalog category and its concepts. userID receives the
// completion event; zero skips it.
func (s *SeedService) Seed(ctx context.Context, userID int32) (*SeedResult, error) {
	result := &SeedResult{}

	for _, entry := range s.catalog {
		var description *string
		if entry.Description != "" {
			d := entry.Description
			description = &d
		}

		category, err := s.categoryRepo.Upsert(ctx, entry.Name, entry.Type, description)
		if err != nil {
			return result, fmt.Errorf("seed category %q: %w", entry.Name, err)
		}
		result.Categories++

		for _, name := range entry.Concepts {
			if _, err := s.conceptRepo.Upsert(ctx, category.ID, name, nil); err != nil {
				return result, fmt.Errorf("seed concept %q of %q: %w", name, entry.Name, err)
			}
			result.Concepts++
		}
	}

	log.Info().Int("categories", result.Categories).Int("concepts", result.Concepts).Msg("Reference catalog seeded")

	if s.eventPublisher != nil && userID != 0 {
		s.eventPublisher.Publish(userID, websocket.ReferenceSeeded(result))
	}
	return result, nil
}
