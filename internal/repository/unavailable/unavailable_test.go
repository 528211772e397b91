package unavailable

import (
	"context"
	"testing"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRepositoriesReportStorageUnavailable(t *testing.T) {
	ctx := context.Background()

	_, err := UserRepository{}.Upsert(ctx, &domain.UpsertUserInput{OpenID: "demo:x"})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = CategoryRepository{}.List(ctx)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = ConceptRepository{}.ListByCategory(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = TransactionRepository{}.List(ctx, 1, nil)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = TransactionRepository{}.Create(ctx, &domain.Transaction{})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	assert.ErrorIs(t, TransactionRepository{}.Delete(ctx, 1, 1), domain.ErrStorageUnavailable)
}
