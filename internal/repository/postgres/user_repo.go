package postgres

import (
	"context"
	"errors"

	"github.com/finanzas-app/finanzas-backend/db/sqlc"
	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	user, err := r.queries.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return sqlcUserToDomain(user), nil
}

// GetByOpenID retrieves a user by their external identity
func (r *UserRepository) GetByOpenID(ctx context.Context, openID string) (*domain.User, error) {
	user, err := r.queries.GetUserByOpenID(ctx, openID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return sqlcUserToDomain(user), nil
}

// Upsert creates the user on first login or refreshes it on later logins
func (r *UserRepository) Upsert(ctx context.Context, input *domain.UpsertUserInput) (*domain.User, error) {
	var role pgtype.Text
	if input.Role != nil {
		role = pgtype.Text{String: string(*input.Role), Valid: true}
	}

	user, err := r.queries.UpsertUser(ctx, sqlc.UpsertUserParams{
		OpenID:       input.OpenID,
		Name:         stringPtrToPgText(input.Name),
		Email:        stringPtrToPgText(input.Email),
		LoginMethod:  stringPtrToPgText(input.LoginMethod),
		LastSignedIn: timeToPgTimestamptz(input.LastSignedIn),
		Role:         role,
	})
	if err != nil {
		return nil, err
	}
	return sqlcUserToDomain(user), nil
}

func sqlcUserToDomain(u sqlc.User) *domain.User {
	return &domain.User{
		ID:           u.ID,
		OpenID:       u.OpenID,
		Name:         pgTextToStringPtr(u.Name),
		Email:        pgTextToStringPtr(u.Email),
		LoginMethod:  pgTextToStringPtr(u.LoginMethod),
		Role:         domain.Role(u.Role),
		CreatedAt:    u.CreatedAt.Time,
		UpdatedAt:    u.UpdatedAt.Time,
		LastSignedIn: u.LastSignedIn.Time,
	}
}
