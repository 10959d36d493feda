package storage

import (
	"context"
	"sync"

	"github.com/emberveil/adventure-engine/pkg/game"
)

// MockStorage is an in-memory Storage for tests.
type MockStorage struct {
	mu         sync.RWMutex
	characters map[int64]*game.Character
	sessions   map[int64]*Session
	nextCharID int64
	nextSessID int64

	pingError   error
	createError error
	getError    error
	updateError error
	sessError   error
}

var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates an empty mock store.
func NewMockStorage() *MockStorage {
	return &MockStorage{
		characters: make(map[int64]*game.Character),
		sessions:   make(map[int64]*Session),
		nextCharID: 1,
		nextSessID: 1,
	}
}

// SetPingError configures Ping to fail.
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetGetError configures GetCharacter to fail.
func (m *MockStorage) SetGetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
}

// SetUpdateError configures state writes to fail.
func (m *MockStorage) SetUpdateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateError = err
}

// SetCreateError configures CreateCharacter to fail.
func (m *MockStorage) SetCreateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createError = err
}

// SetSessionError configures session operations to fail.
func (m *MockStorage) SetSessionError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessError = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) CreateCharacter(ctx context.Context, c *game.Character) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createError != nil {
		return 0, m.createError
	}

	id := m.nextCharID
	m.nextCharID++

	stored := *c
	stored.ID = id
	stored.Inventory = game.CloneInventory(c.Inventory)
	m.characters[id] = &stored
	return id, nil
}

func (m *MockStorage) GetCharacter(ctx context.Context, id int64) (*game.Character, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.getError != nil {
		return nil, m.getError
	}

	c, ok := m.characters[id]
	if !ok {
		return nil, ErrNotFound
	}

	out := *c
	out.Skills = game.ClassSkills(c.Class)
	out.Inventory = game.CloneInventory(c.Inventory)
	return &out, nil
}

func (m *MockStorage) UpdateCharacter(ctx context.Context, c *game.Character) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateError != nil {
		return m.updateError
	}
	if _, ok := m.characters[c.ID]; !ok {
		return ErrNotFound
	}

	stored := *c
	stored.Inventory = game.CloneInventory(c.Inventory)
	m.characters[c.ID] = &stored
	return nil
}

func (m *MockStorage) UpdateCharacterState(ctx context.Context, id int64, hp int, inventory []game.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateError != nil {
		return m.updateError
	}

	c, ok := m.characters[id]
	if !ok {
		return ErrNotFound
	}
	c.HP = hp
	c.Inventory = game.CloneInventory(inventory)
	return nil
}

func (m *MockStorage) SaveSession(ctx context.Context, s *Session) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sessError != nil {
		return 0, m.sessError
	}

	id := m.nextSessID
	m.nextSessID++

	stored := *s
	stored.ID = id
	stored.GameLog = append([]string(nil), s.GameLog...)
	m.sessions[id] = &stored
	return id, nil
}

func (m *MockStorage) GetSession(ctx context.Context, id int64) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.sessError != nil {
		return nil, m.sessError
	}

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	out := *s
	out.GameLog = append([]string(nil), s.GameLog...)
	return &out, nil
}
