package service

import (
	"context"
	"errors"
	"testing"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/testutil"
)

func newReferenceService() (*ReferenceService, *testutil.MockCategoryRepository, *testutil.MockConceptRepository) {
	categoryRepo := testutil.NewMockCategoryRepository()
	categoryRepo.AddCategory(&domain.Category{ID: 1, Name: "Aportes", Type: domain.TransactionTypeIngreso})
	categoryRepo.AddCategory(&domain.Category{ID: 2, Name: "Gastos de Oficina", Type: domain.TransactionTypeEgreso})

	conceptRepo := testutil.NewMockConceptRepository()
	conceptRepo.AddConcept(&domain.Concept{ID: 1, CategoryID: 1, Name: "Aportes Ordinarios"})
	conceptRepo.AddConcept(&domain.Concept{ID: 2, CategoryID: 2, Name: "Papeleria"})
	conceptRepo.AddConcept(&domain.Concept{ID: 3, CategoryID: 2, Name: "Cafeteria"})

	return NewReferenceService(categoryRepo, conceptRepo), categoryRepo, conceptRepo
}

func TestListCategories(t *testing.T) {
	service, _, _ := newReferenceService()
	ctx := context.Background()

	if all := service.ListCategories(ctx, nil); len(all) != 2 {
		t.Errorf("Expected 2 categories, got %d", len(all))
	}

	egreso := domain.TransactionTypeEgreso
	filtered := service.ListCategories(ctx, &egreso)
	if len(filtered) != 1 || filtered[0].Name != "Gastos de Oficina" {
		t.Errorf("Expected only the egreso category, got %v", filtered)
	}
}

func TestListConcepts(t *testing.T) {
	service, _, _ := newReferenceService()
	ctx := context.Background()

	if all := service.ListConcepts(ctx, nil); len(all) != 3 {
		t.Errorf("Expected all 3 concepts, got %d", len(all))
	}
	if byCategory := service.ListConcepts(ctx, ptr(int32(2))); len(byCategory) != 2 {
		t.Errorf("Expected 2 concepts for category 2, got %d", len(byCategory))
	}
}

func TestListReference_DegradesOnError(t *testing.T) {
	service, categoryRepo, conceptRepo := newReferenceService()
	categoryRepo.ListErr = domain.ErrStorageUnavailable
	conceptRepo.ListErr = domain.ErrStorageUnavailable

	if got := service.ListCategories(context.Background(), nil); got == nil || len(got) != 0 {
		t.Errorf("Expected empty categories, got %v", got)
	}
	if got := service.ListConcepts(context.Background(), nil); got == nil || len(got) != 0 {
		t.Errorf("Expected empty concepts, got %v", got)
	}

	categories, concepts := service.Names(context.Background())
	if len(categories) != 0 || len(concepts) != 0 {
		t.Errorf("Expected empty name maps, got %v %v", categories, concepts)
	}
}

func TestGetCategoryAndConcept(t *testing.T) {
	service, _, _ := newReferenceService()
	ctx := context.Background()

	category, err := service.GetCategory(ctx, 1)
	if err != nil || category.Name != "Aportes" {
		t.Errorf("Expected Aportes, got %v, %v", category, err)
	}
	if _, err := service.GetCategory(ctx, 99); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}

	concept, err := service.GetConcept(ctx, 3)
	if err != nil || concept.Name != "Cafeteria" {
		t.Errorf("Expected Cafeteria, got %v, %v", concept, err)
	}
	if _, err := service.GetConcept(ctx, 99); !errors.Is(err, domain.ErrConceptNotFound) {
		t.Errorf("Expected ErrConceptNotFound, got %v", err)
	}
}
