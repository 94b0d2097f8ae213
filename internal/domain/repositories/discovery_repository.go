package repositories

import (
	"context"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
)

// DiscoveryRepository finds Terraform root modules in a remote repository
// so their paths can be fed into plan and apply runs.
type DiscoveryRepository interface {
	// DiscoverProjects returns one path per directory at ref that holds a
	// Terraform root module.
	DiscoverProjects(ctx context.Context, owner, repo, ref string) ([]entities.ProjectPath, error)
}
