package service

import (
	"context"
	"testing"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_LoadsCatalog(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	conceptRepo := testutil.NewMockConceptRepository()
	publisher := testutil.NewMockEventPublisher()
	service := NewSeedService(categoryRepo, conceptRepo)
	service.SetEventPublisher(publisher)

	result, err := service.Seed(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 9, result.Categories)
	assert.Equal(t, 53, result.Concepts)
	assert.Len(t, categoryRepo.Categories, 9)
	assert.Len(t, conceptRepo.Concepts, 53)
	assert.Equal(t, []string{"reference.seeded"}, publisher.Types())
}

func TestSeed_Idempotent(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	conceptRepo := testutil.NewMockConceptRepository()
	service := NewSeedService(categoryRepo, conceptRepo)

	_, err := service.Seed(context.Background(), 0)
	require.NoError(t, err)
	_, err = service.Seed(context.Background(), 0)
	require.NoError(t, err)

	assert.Len(t, categoryRepo.Categories, 9)
	assert.Len(t, conceptRepo.Concepts, 53)
}

func TestSeed_ConceptsBelongToTheirCategory(t *testing.T) {
	categoryRepo := testutil.NewMockCategoryRepository()
	conceptRepo := testutil.NewMockConceptRepository()
	service := NewSeedService(categoryRepo, conceptRepo)

	_, err := service.Seed(context.Background(), 0)
	require.NoError(t, err)

	byName := make(map[string]*domain.Category)
	for _, c := range categoryRepo.Categories {
		byName[c.Name] = c
	}
	for _, entry := range domain.DefaultCatalog {
		category, ok := byName[entry.Name]
		require.True(t, ok, "missing category %s", entry.Name)
		assert.Equal(t, entry.Type, category.Type)

		concepts, err := conceptRepo.ListByCategory(context.Background(), category.ID)
		require.NoError(t, err)
		assert.Len(t, concepts, len(entry.Concepts), entry.Name)
	}
}
