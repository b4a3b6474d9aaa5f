package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
	"github.com/emiliopalmerini/chromastudio/internal/ports"
)

// WorkspaceStore keeps workspaces in process memory. Nothing outlives the
// process.
type WorkspaceStore struct {
	mu         sync.Mutex
	workspaces map[string]*domain.Workspace
	order      []string // creation order, oldest first
	capacity   int
	newID      func() string
}

// Option configures a WorkspaceStore.
type Option func(*WorkspaceStore)

// WithCapacity bounds the number of live workspaces. Creating one past the
// bound evicts the oldest. Zero or less means unbounded.
func WithCapacity(n int) Option {
	return func(s *WorkspaceStore) {
		s.capacity = n
	}
}

// NewWorkspaceStore returns an empty store.
func NewWorkspaceStore(opts ...Option) *WorkspaceStore {
	s := &WorkspaceStore{
		workspaces: make(map[string]*domain.Workspace),
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *WorkspaceStore) Create(ctx context.Context) (*domain.Workspace, error) {
	ws := &domain.Workspace{ID: s.newID()}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.workspaces[ws.ID]; exists {
		return nil, fmt.Errorf("workspace %s already exists", ws.ID)
	}
	for s.capacity > 0 && len(s.order) >= s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.workspaces, oldest)
	}
	s.workspaces[ws.ID] = ws.Clone()
	s.order = append(s.order, ws.ID)
	return ws, nil
}

func (s *WorkspaceStore) Get(ctx context.Context, id string) (*domain.Workspace, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ports.ErrWorkspaceNotFound, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.workspaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrWorkspaceNotFound, id)
	}
	return ws.Clone(), nil
}

// Update applies fn to a copy of the workspace and stores the copy when fn
// succeeds. Updates to the same store run one at a time, so concurrent
// callers never overwrite each other's changes.
func (s *WorkspaceStore) Update(ctx context.Context, id string, fn func(*domain.Workspace) error) (*domain.Workspace, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ports.ErrWorkspaceNotFound, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.workspaces[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ports.ErrWorkspaceNotFound, id)
	}

	ws := current.Clone()
	if err := fn(ws); err != nil {
		return nil, err
	}
	ws.ID = id
	s.workspaces[id] = ws.Clone()
	return ws, nil
}

// Len returns the number of live workspaces.
func (s *WorkspaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.workspaces)
}
