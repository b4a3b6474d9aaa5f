package ports

import (
	"context"
	"errors"

	"github.com/emiliopalmerini/chromastudio/internal/domain"
)

// ErrWorkspaceNotFound is returned for ids the repository does not hold.
var ErrWorkspaceNotFound = errors.New("workspace not found")

// WorkspaceRepository stores per-browser workspaces.
type WorkspaceRepository interface {
	Create(ctx context.Context) (*domain.Workspace, error)
	Get(ctx context.Context, id string) (*domain.Workspace, error)
	// Update runs fn against the stored workspace and persists the result
	// atomically. An error from fn leaves the workspace unchanged.
	Update(ctx context.Context, id string, fn func(*domain.Workspace) error) (*domain.Workspace, error)
}
