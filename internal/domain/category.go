package domain

import (
	"context"
	"time"
)

type Category struct {
	ID          int32           `json:"id"`
	Name        string          `json:"name"`
	Type        TransactionType `json:"type"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
	ListByType(ctx context.Context, txType TransactionType) ([]*Category, error)
	GetByID(ctx context.Context, id int32) (*Category, error)
	Upsert(ctx context.Context, name string, txType TransactionType, description *string) (*Category, error)
}

// CategoryNames indexes categories by id for display lookups.
func CategoryNames(categories []*Category) map[int32]string {
	names := make(map[int32]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}
