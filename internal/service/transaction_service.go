package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// TransactionService handles transaction-related business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	conceptRepo     domain.ConceptRepository
	eventPublisher  websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, conceptRepo domain.ConceptRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		conceptRepo:     conceptRepo,
	}
}

// SetEventPublisher sets the event publisher for change notifications
func (s *TransactionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *TransactionService) publishEvent(userID int32, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// CreateTransactionInput holds the input for creating a transaction.
// Nil pointers are treated as missing fields.
type CreateTransactionInput struct {
	Date       *time.Time
	Type       string
	CategoryID *int32
	ConceptID  *int32
	Amount     *int64
	Content    string
	Comment    *string
}

// UpdateTransactionInput is a partial patch. Nil fields keep the stored value.
type UpdateTransactionInput struct {
	Date       *time.Time
	Type       *string
	CategoryID *int32
	ConceptID  *int32
	Amount     *int64
	Content    *string
	Comment    *string
}

// DeletedTransactionPayload is published after a delete
type DeletedTransactionPayload struct {
	ID int32 `json:"id"`
}

// ListTransactions returns the caller's transactions matching filters, newest first.
// Storage failures degrade to an empty list.
func (s *TransactionService) ListTransactions(ctx context.Context, userID int32, filters *domain.TransactionFilters) []*domain.Transaction {
	txs, err := s.transactionRepo.List(ctx, userID, filters)
	if err != nil {
		log.Error().Err(err).Int32("user_id", userID).Msg("Failed to list transactions")
		return []*domain.Transaction{}
	}
	return txs
}

// GetTransaction returns one transaction owned by the caller
func (s *TransactionService) GetTransaction(ctx context.Context, userID, id int32) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(ctx, userID, id)
}

// CreateTransaction validates the input and stores a transaction for the caller
func (s *TransactionService) CreateTransaction(ctx context.Context, userID int32, input CreateTransactionInput) (*domain.Transaction, error) {
	if input.CategoryID == nil || *input.CategoryID <= 0 {
		return nil, domain.ErrCategoryRequired
	}
	if input.ConceptID == nil || *input.ConceptID <= 0 {
		return nil, domain.ErrConceptRequired
	}
	if input.Amount == nil || *input.Amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	content, err := validateContent(input.Content)
	if err != nil {
		return nil, err
	}
	if input.Date == nil || input.Date.IsZero() {
		return nil, domain.ErrDateRequired
	}
	txType, err := domain.ParseTransactionType(input.Type)
	if err != nil {
		return nil, err
	}
	if err := s.checkConceptCategory(ctx, *input.CategoryID, *input.ConceptID); err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		UserID:     userID,
		Type:       txType,
		CategoryID: *input.CategoryID,
		ConceptID:  *input.ConceptID,
		Amount:     *input.Amount,
		Content:    content,
		Comment:    normalizeComment(input.Comment),
	}
	tx.SetDate(input.Date.UTC())

	created, err := s.transactionRepo.Create(ctx, tx)
	if err != nil {
		log.Error().Err(err).Int32("user_id", userID).Msg("Failed to create transaction")
		return nil, err
	}

	s.publishEvent(userID, websocket.TransactionCreated(created))
	return created, nil
}

// UpdateTransaction applies a partial patch to a transaction owned by the caller
func (s *TransactionService) UpdateTransaction(ctx context.Context, userID, id int32, input UpdateTransactionInput) (*domain.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		txType, err := domain.ParseTransactionType(*input.Type)
		if err != nil {
			return nil, err
		}
		tx.Type = txType
	}
	if input.CategoryID != nil {
		if *input.CategoryID <= 0 {
			return nil, domain.ErrCategoryRequired
		}
		tx.CategoryID = *input.CategoryID
	}
	if input.ConceptID != nil {
		if *input.ConceptID <= 0 {
			return nil, domain.ErrConceptRequired
		}
		tx.ConceptID = *input.ConceptID
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		tx.Amount = *input.Amount
	}
	if input.Content != nil {
		content, err := validateContent(*input.Content)
		if err != nil {
			return nil, err
		}
		tx.Content = content
	}
	if input.Comment != nil {
		tx.Comment = normalizeComment(input.Comment)
	}
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domain.ErrDateRequired
		}
		tx.SetDate(input.Date.UTC())
	}
	if input.CategoryID != nil || input.ConceptID != nil {
		if err := s.checkConceptCategory(ctx, tx.CategoryID, tx.ConceptID); err != nil {
			return nil, err
		}
	}

	updated, err := s.transactionRepo.Update(ctx, tx)
	if err != nil {
		if !errors.Is(err, domain.ErrTransactionNotFound) {
			log.Error().Err(err).Int32("user_id", userID).Int32("transaction_id", id).Msg("Failed to update transaction")
		}
		return nil, err
	}

	s.publishEvent(userID, websocket.TransactionUpdated(updated))
	return updated, nil
}

// DeleteTransaction removes a transaction owned by the caller
func (s *TransactionService) DeleteTransaction(ctx context.Context, userID, id int32) error {
	if err := s.transactionRepo.Delete(ctx, userID, id); err != nil {
		if !errors.Is(err, domain.ErrTransactionNotFound) {
			log.Error().Err(err).Int32("user_id", userID).Int32("transaction_id", id).Msg("Failed to delete transaction")
		}
		return err
	}

	s.publishEvent(userID, websocket.TransactionDeleted(DeletedTransactionPayload{ID: id}))
	return nil
}

// checkConceptCategory rejects a concept known to belong to another category.
// Category and concept ids are logical references; unknown ids pass.
func (s *TransactionService) checkConceptCategory(ctx context.Context, categoryID, conceptID int32) error {
	if s.conceptRepo == nil {
		return nil
	}
	concept, err := s.conceptRepo.GetByID(ctx, conceptID)
	if err != nil {
		return nil
	}
	if concept.CategoryID != categoryID {
		return domain.ErrConceptCategoryMismatch
	}
	return nil
}

func validateContent(raw string) (string, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", domain.ErrContentRequired
	}
	if len([]rune(content)) > domain.MaxContentLength {
		return "", domain.ErrContentTooLong
	}
	return content, nil
}

func normalizeComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*comment)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
