package repositories

import (
	"context"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
)

// WorkflowRepository abstracts the Atlantis REST API. Responses are the
// parsed JSON bodies as the server returns them; list operations unwrap
// the wrapping field.
type WorkflowRepository interface {
	// ListProjects returns all projects known to the server.
	ListProjects(ctx context.Context) ([]map[string]any, error)

	// GetProject returns a single project. Project and branch are optional.
	GetProject(ctx context.Context, repo, project, branch string) (map[string]any, error)

	// GetProjectStatus returns the lock/plan/apply status of a project.
	GetProjectStatus(ctx context.Context, repo, project, branch string) (map[string]any, error)

	// ListLocks returns all locks, optionally filtered by repository.
	ListLocks(ctx context.Context, repo string) ([]map[string]any, error)

	// DeleteLock deletes a lock by ID. Repo and project are optional.
	DeleteLock(ctx context.Context, lockID, repo, project string) (map[string]any, error)

	// ListEvents returns recent server events. Zero limit means no limit.
	ListEvents(ctx context.Context, limit int) ([]map[string]any, error)

	// GetVersion returns the server version information.
	GetVersion(ctx context.Context) (map[string]any, error)

	// GetHealth returns the server health status.
	GetHealth(ctx context.Context) (map[string]any, error)

	// Plan triggers a Terraform plan for the given repository and paths.
	Plan(ctx context.Context, input entities.RunInput) (map[string]any, error)

	// Apply triggers a Terraform apply for the given repository and paths.
	Apply(ctx context.Context, input entities.RunInput) (map[string]any, error)
}
