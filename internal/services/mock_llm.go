package services

import (
	"context"
	"sync"
)

// MockTextGenerator is a hand-rolled TextGenerator for tests. Behavior is
// injected through func fields; calls are recorded for assertions.
type MockTextGenerator struct {
	GenerateFunc     func(ctx context.Context, prompt string) (string, error)
	InitModelFunc    func(ctx context.Context, modelName string) error
	IsModelReadyFunc func(ctx context.Context, modelName string) (bool, error)

	GenerateCalls  []string
	InitModelCalls []string

	mu sync.Mutex
}

var _ TextGenerator = (*MockTextGenerator)(nil)

// NewMockTextGenerator creates a mock that succeeds with empty replies by
// default.
func NewMockTextGenerator() *MockTextGenerator {
	return &MockTextGenerator{
		GenerateCalls:  make([]string, 0),
		InitModelCalls: make([]string, 0),
	}
}

// Generate records the prompt and delegates to GenerateFunc when set.
func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.GenerateCalls = append(m.GenerateCalls, prompt)
	fn := m.GenerateFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt)
	}
	return "", nil
}

// InitModel records the call and delegates to InitModelFunc when set.
func (m *MockTextGenerator) InitModel(ctx context.Context, modelName string) error {
	m.mu.Lock()
	m.InitModelCalls = append(m.InitModelCalls, modelName)
	fn := m.InitModelFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, modelName)
	}
	return nil
}

// IsModelReady delegates to IsModelReadyFunc, defaulting to ready.
func (m *MockTextGenerator) IsModelReady(ctx context.Context, modelName string) (bool, error) {
	m.mu.Lock()
	fn := m.IsModelReadyFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, modelName)
	}
	return true, nil
}

// LastPrompt returns the most recent prompt passed to Generate, or "".
func (m *MockTextGenerator) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.GenerateCalls) == 0 {
		return ""
	}
	return m.GenerateCalls[len(m.GenerateCalls)-1]
}
