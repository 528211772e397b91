package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/finanzas-app/finanzas-backend/internal/domain"
	"github.com/finanzas-app/finanzas-backend/internal/websocket"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	mu       sync.Mutex
	ByOpenID map[string]*domain.User
	ByID     map[int32]*domain.User
	NextID   int32
	UpsertFn func(input *domain.UpsertUserInput) (*domain.User, error)
	GetErr   error
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		ByOpenID: make(map[string]*domain.User),
		ByID:     make(map[int32]*domain.User),
		NextID:   1,
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(_ context.Context, id int32) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if user, ok := m.ByID[id]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// GetByOpenID retrieves a user by external id
func (m *MockUserRepository) GetByOpenID(_ context.Context, openID string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if user, ok := m.ByOpenID[openID]; ok {
		return user, nil
	}
	return nil, domain.ErrUserNotFound
}

// Upsert mirrors the SQL upsert: insert on first sight, overwrite provided fields after
func (m *MockUserRepository) Upsert(_ context.Context, input *domain.UpsertUserInput) (*domain.User, error) {
	if m.UpsertFn != nil {
		return m.UpsertFn(input)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.ByOpenID[input.OpenID]
	if !ok {
		user = &domain.User{
			ID:        m.NextID,
			OpenID:    input.OpenID,
			Role:      domain.RoleUser,
			CreatedAt: input.LastSignedIn,
		}
		m.NextID++
		m.ByOpenID[user.OpenID] = user
		m.ByID[user.ID] = user
	}
	if input.Name != nil {
		user.Name = input.Name
	}
	if input.Email != nil {
		user.Email = input.Email
	}
	if input.LoginMethod != nil {
		user.LoginMethod = input.LoginMethod
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	user.LastSignedIn = input.LastSignedIn
	user.UpdatedAt = input.LastSignedIn
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ByOpenID[user.OpenID] = user
	m.ByID[user.ID] = user
	if user.ID >= m.NextID {
		m.NextID = user.ID + 1
	}
}

// Count returns the number of stored users
func (m *MockUserRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ByID)
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[int32]*domain.Category
	NextID     int32
	ListErr    error
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[int32]*domain.Category),
		NextID:     1,
	}
}

func (m *MockCategoryRepository) List(_ context.Context) ([]*domain.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]*domain.Category, 0, len(m.Categories))
	for id := int32(1); id < m.NextID; id++ {
		if c, ok := m.Categories[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *MockCategoryRepository) ListByType(ctx context.Context, txType domain.TransactionType) ([]*domain.Category, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Category, 0)
	for _, c := range all {
		if c.Type == txType {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *MockCategoryRepository) GetByID(_ context.Context, id int32) (*domain.Category, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if c, ok := m.Categories[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Upsert(_ context.Context, name string, txType domain.TransactionType, description *string) (*domain.Category, error) {
	for _, c := range m.Categories {
		if c.Name == name {
			c.Type = txType
			c.Description = description
			return c, nil
		}
	}
	c := &domain.Category{ID: m.NextID, Name: name, Type: txType, Description: description}
	m.Categories[c.ID] = c
	m.NextID++
	return c, nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(c *domain.Category) {
	m.Categories[c.ID] = c
	if c.ID >= m.NextID {
		m.NextID = c.ID + 1
	}
}

// MockConceptRepository is a mock implementation of domain.ConceptRepository
type MockConceptRepository struct {
	Concepts map[int32]*domain.Concept
	NextID   int32
	ListErr  error
}

// NewMockConceptRepository creates a new MockConceptRepository
func NewMockConceptRepository() *MockConceptRepository {
	return &MockConceptRepository{
		Concepts: make(map[int32]*domain.Concept),
		NextID:   1,
	}
}

func (m *MockConceptRepository) List(_ context.Context) ([]*domain.Concept, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]*domain.Concept, 0, len(m.Concepts))
	for id := int32(1); id < m.NextID; id++ {
		if c, ok := m.Concepts[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *MockConceptRepository) ListByCategory(ctx context.Context, categoryID int32) ([]*domain.Concept, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.Concept, 0)
	for _, c := range all {
		if c.CategoryID == categoryID {
			result = append(result, c)
		}
	}
	return result, nil
}

func (m *MockConceptRepository) GetByID(_ context.Context, id int32) (*domain.Concept, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if c, ok := m.Concepts[id]; ok {
		return c, nil
	}
	return nil, domain.ErrConceptNotFound
}

func (m *MockConceptRepository) Upsert(_ context.Context, categoryID int32, name string, description *string) (*domain.Concept, error) {
	for _, c := range m.Concepts {
		if c.CategoryID == categoryID && c.Name == name {
			if description != nil {
				c.Description = description
			}
			return c, nil
		}
	}
	c := &domain.Concept{ID: m.NextID, CategoryID: categoryID, Name: name, Description: description}
	m.Concepts[c.ID] = c
	m.NextID++
	return c, nil
}

// AddConcept adds a concept to the mock repository (helper for tests)
func (m *MockConceptRepository) AddConcept(c *domain.Concept) {
	m.Concepts[c.ID] = c
	if c.ID >= m.NextID {
		m.NextID = c.ID + 1
	}
}

// MockTransactionRepository is an in-memory domain.TransactionRepository
// applying the same filters and ordering as the SQL query
type MockTransactionRepository struct {
	mu           sync.Mutex
	Transactions map[int32]*domain.Transaction
	NextID       int32
	CreateErr    error
	ListErr      error
	UpdateErr    error
	DeleteErr    error
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[int32]*domain.Transaction),
		NextID:       1,
	}
}

func (m *MockTransactionRepository) Create(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	stored := *tx
	stored.ID = m.NextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	m.NextID++
	m.Transactions[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *MockTransactionRepository) GetByID(_ context.Context, userID, id int32) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tx, ok := m.Transactions[id]
	if !ok || tx.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}
	out := *tx
	return &out, nil
}

func (m *MockTransactionRepository) List(_ context.Context, userID int32, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	result := make([]*domain.Transaction, 0)
	for _, tx := range m.Transactions {
		if tx.UserID == userID && filters.Matches(tx) {
			out := *tx
			result = append(result, &out)
		}
	}
	domain.SortTransactions(result)
	return result, nil
}

func (m *MockTransactionRepository) Update(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	existing, ok := m.Transactions[tx.ID]
	if !ok || existing.UserID != tx.UserID {
		return nil, domain.ErrTransactionNotFound
	}
	stored := *tx
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	m.Transactions[tx.ID] = &stored
	out := stored
	return &out, nil
}

func (m *MockTransactionRepository) Delete(_ context.Context, userID, id int32) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	tx, ok := m.Transactions[id]
	if !ok || tx.UserID != userID {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	return nil
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(tx *domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transactions[tx.ID] = tx
	if tx.ID >= m.NextID {
		m.NextID = tx.ID + 1
	}
}

// MockReportArchive records stored reports
type MockReportArchive struct {
	Stored map[string][]byte
	Err    error
}

func NewMockReportArchive() *MockReportArchive {
	return &MockReportArchive{Stored: make(map[string][]byte)}
}

func (m *MockReportArchive) Store(_ context.Context, userID int32, filename string, content []byte) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	key := "reports/" + filename
	m.Stored[key] = content
	return key, nil
}

// PublishedEvent is one call captured by MockEventPublisher
type PublishedEvent struct {
	UserID int32
	Event  websocket.Event
}

// MockEventPublisher captures published events
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

func (m *MockEventPublisher) Publish(userID int32, event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{UserID: userID, Event: event})
}

// Types returns the event type of every captured event in order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, e := range m.Events {
		types[i] = e.Event.Type
	}
	return types
}
