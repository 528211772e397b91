package domain

import (
	"context"
	"slices"
	"time"
)

type TransactionType string

const (
	TransactionTypeIngreso TransactionType = "ingreso"
	TransactionTypeEgreso  TransactionType = "egreso"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIngreso || t == TransactionTypeEgreso
}

// ParseTransactionType validates a raw type string.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", ErrInvalidTransactionType
	}
	return t, nil
}

type Transaction struct {
	ID         int32           `json:"id"`
	UserID     int32           `json:"userId"`
	Date       time.Time       `json:"date"`
	Month      int32           `json:"month"`
	Year       int32           `json:"year"`
	Type       TransactionType `json:"type"`
	CategoryID int32           `json:"categoryId"`
	ConceptID  int32           `json:"conceptId"`
	Amount     int64           `json:"amount"`
	Content    string          `json:"content"`
	Comment    *string         `json:"comment"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// SetDate stores the date and recomputes month and year from it in UTC.
func (t *Transaction) SetDate(date time.Time) {
	t.Date = date
	t.Month, t.Year = MonthYear(date)
}

// MonthYear returns the UTC calendar month (1-12) and year of date.
func MonthYear(date time.Time) (month, year int32) {
	utc := date.UTC()
	return int32(utc.Month()), int32(utc.Year())
}

// TransactionFilters narrows a transaction listing. Nil fields are ignored.
// The date range applies only when both bounds are set.
type TransactionFilters struct {
	Type       *TransactionType
	CategoryID *int32
	ConceptID  *int32
	ConceptIDs []int32
	Month      *int32
	Year       *int32
	StartDate  *time.Time
	EndDate    *time.Time
}

func (f *TransactionFilters) HasDateRange() bool {
	return f != nil && f.StartDate != nil && f.EndDate != nil
}

// Matches reports whether tx passes every filter. It mirrors the SQL
// predicate of the postgres repository.
func (f *TransactionFilters) Matches(tx *Transaction) bool {
	if f == nil {
		return true
	}
	if f.Type != nil && tx.Type != *f.Type {
		return false
	}
	if f.CategoryID != nil && tx.CategoryID != *f.CategoryID {
		return false
	}
	if f.ConceptID != nil && tx.ConceptID != *f.ConceptID {
		return false
	}
	if len(f.ConceptIDs) > 0 && !slices.Contains(f.ConceptIDs, tx.ConceptID) {
		return false
	}
	if f.Month != nil && tx.Month != *f.Month {
		return false
	}
	if f.Year != nil && tx.Year != *f.Year {
		return false
	}
	if f.HasDateRange() && (tx.Date.Before(*f.StartDate) || tx.Date.After(*f.EndDate)) {
		return false
	}
	return true
}

// SortTransactions orders by date descending, newest id first on ties.
func SortTransactions(txs []*Transaction) {
	slices.SortStableFunc(txs, func(a, b *Transaction) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return int(b.ID) - int(a.ID)
	})
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) (*Transaction, error)
	GetByID(ctx context.Context, userID, id int32) (*Transaction, error)
	List(ctx context.Context, userID int32, filters *TransactionFilters) ([]*Transaction, error)
	Update(ctx context.Context, tx *Transaction) (*Transaction, error)
	Delete(ctx context.Context, userID, id int32) error
}
