package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	app := newTestApp(t, enabledDemo())
	cookie := app.login(t, "demo", "secret")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"all", "", []string{"Aportes", "Gastos de Oficina"}},
		{"ingreso only", "?type=ingreso", []string{"Aportes"}},
		{"egreso only", "?type=egreso", []string{"Gastos de Oficina"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(http.MethodGet, "/api/v1/categories"+tt.query, "", cookie)
			require.Equal(t, http.StatusOK, rec.Code)

			var categories []domain.Category
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
			names := make([]string, len(categories))
			for i, c := range categories {
				names[i] = c.Name
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}

	rec := app.do(http.MethodGet, "/api/v1/categories?type=gasto", "", cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCategories_StorageDegradesToEmpty(t *testing.T) {
	app := newTestApp(t, enabledDemo())
	cookie := app.login(t, "demo", "secret")
	app.categories.ListErr = domain.ErrStorageUnavailable

	rec := app.do(http.MethodGet, "/api/v1/categories", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetCategory(t *testing.T) {
	app := newTestApp(t, enabledDemo())
	cookie := app.login(t, "demo", "secret")

	rec := app.do(http.MethodGet, "/api/v1/categories/2", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var category domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &category))
	assert.Equal(t, domain.TransactionTypeEgreso, category.Type)

	rec = app.do(http.MethodGet, "/api/v1/categories/404", "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(http.MethodGet, "/api/v1/categories/abc", "", cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetConcepts(t *testing.T) {
	app := newTestApp(t, enabledDemo())
	cookie := app.login(t, "demo", "secret")

	rec := app.do(http.MethodGet, "/api/v1/concepts", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var all []domain.Concept
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 2)

	rec = app.do(http.MethodGet, "/api/v1/concepts?categoryId=2", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered []domain.Concept
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Papeleria", filtered[0].Name)

	rec = app.do(http.MethodGet, "/api/v1/concepts?categoryId=x", "", cookie)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetConcept(t *testing.T) {
	app := newTestApp(t, enabledDemo())
	cookie := app.login(t, "demo", "secret")

	rec := app.do(http.MethodGet, "/api/v1/concepts/1", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(http.MethodGet, "/api/v1/concepts/77", "", cookie)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
