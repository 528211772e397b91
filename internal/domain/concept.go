package domain

import (
	"context"
	"time"
)

type Concept struct {
	ID          int32     `json:"id"`
	CategoryID  int32     `json:"categoryId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ConceptRepository interface {
	List(ctx context.Context) ([]*Concept, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]*Concept, error)
	GetByID(ctx context.Context, id int32) (*Concept, error)
	Upsert(ctx context.Context, categoryID int32, name string, description *string) (*Concept, error)
}

// ConceptNames indexes concepts by id for display lookups.
func ConceptNames(concepts []*Concept) map[int32]string {
	names := make(map[int32]string, len(concepts))
	for _, c := range concepts {
		names[c.ID] = c.Name
	}
	return names
}
