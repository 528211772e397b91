package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "finanzas:ref:"

const (
	keyCategoriesAll = keyPrefix + "categories:all"
	keyConceptsAll   = keyPrefix + "concepts:all"
)

func categoriesByTypeKey(t domain.TransactionType) string {
	return fmt.Sprintf("%scategories:type:%s", keyPrefix, t)
}

func categoryKey(id int32) string {
	return fmt.Sprintf("%scategory:%d", keyPrefix, id)
}

func conceptsByCategoryKey(categoryID int32) string {
	return fmt.Sprintf("%sconcepts:category:%d", keyPrefix, categoryID)
}

func conceptKey(id int32) string {
	return fmt.Sprintf("%sconcept:%d", keyPrefix, id)
}

// readThrough serves key from redis, loading and storing it on a miss.
// Redis failures are logged and never fail the read.
func readThrough[T any](ctx context.Context, client Client, ttl time.Duration, key string, load func() (T, error)) (T, error) {
	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		log.Warn().Str("key", key).Msg("Discarding undecodable cache entry")
	} else if !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("Reference cache read failed")
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if data, err := json.Marshal(value); err == nil {
		if err := client.Set(ctx, key, data, ttl).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Reference cache write failed")
		}
	}
	return value, nil
}

func invalidate(ctx context.Context, client Client, keys ...string) {
	if err := client.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Strs("keys", keys).Msg("Reference cache invalidation failed")
	}
}

// CategoryRepository caches category reads in redis.
type CategoryRepository struct {
	next   domain.CategoryRepository
	client Client
	ttl    time.Duration
}

func NewCategoryRepository(next domain.CategoryRepository, client Client, ttl time.Duration) *CategoryRepository {
	return &CategoryRepository{next: next, client: client, ttl: ttl}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	return readThrough(ctx, r.client, r.ttl, keyCategoriesAll, func() ([]*domain.Category, error) {
		return r.next.List(ctx)
	})
}

func (r *CategoryRepository) ListByType(ctx context.Context, txType domain.TransactionType) ([]*domain.Category, error) {
	return readThrough(ctx, r.client, r.ttl, categoriesByTypeKey(txType), func() ([]*domain.Category, error) {
		return r.next.ListByType(ctx, txType)
	})
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int32) (*domain.Category, error) {
	return readThrough(ctx, r.client, r.ttl, categoryKey(id), func() (*domain.Category, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *CategoryRepository) Upsert(ctx context.Context, name string, txType domain.TransactionType, description *string) (*domain.Category, error) {
	category, err := r.next.Upsert(ctx, name, txType, description)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, r.client,
		keyCategoriesAll,
		categoriesByTypeKey(domain.TransactionTypeIngreso),
		categoriesByTypeKey(domain.TransactionTypeEgreso),
		categoryKey(category.ID),
	)
	return category, nil
}

// ConceptRepository caches concept reads in redis.
type ConceptRepository struct {
	next   domain.ConceptRepository
	client Client
	ttl    time.Duration
}

func NewConceptRepository(next domain.ConceptRepository, client Client, ttl time.Duration) *ConceptRepository {
	return &ConceptRepository{next: next, client: client, ttl: ttl}
}

func (r *ConceptRepository) List(ctx context.Context) ([]*domain.Concept, error) {
	return readThrough(ctx, r.client, r.ttl, keyConceptsAll, func() ([]*domain.Concept, error) {
		return r.next.List(ctx)
	})
}

func (r *ConceptRepository) ListByCategory(ctx context.Context, categoryID int32) ([]*domain.Concept, error) {
	return readThrough(ctx, r.client, r.ttl, conceptsByCategoryKey(categoryID), func() ([]*domain.Concept, error) {
		return r.next.ListByCategory(ctx, categoryID)
	})
}

func (r *ConceptRepository) GetByID(ctx context.Context, id int32) (*domain.Concept, error) {
	return readThrough(ctx, r.client, r.ttl, conceptKey(id), func() (*domain.Concept, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *ConceptRepository) Upsert(ctx context.Context, categoryID int32, name string, description *string) (*domain.Concept, error) {
	concept, err := r.next.Upsert(ctx, categoryID, name, description)
	if err != nil {
		return nil, err
	}
	invalidate(ctx, r.client,
		keyConceptsAll,
		conceptsByCategoryKey(categoryID),
		conceptKey(concept.ID),
	)
	return concept, nil
}
