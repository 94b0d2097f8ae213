package repositories

import (
	"github.com/rios0rios0/terraforge/config"
	domainRepos "github.com/rios0rios0/terraforge/internal/domain/repositories"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories/atlantis"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories/github"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories/terraform"
)

// ClientFactory builds the API clients from loaded configuration. Clients
// are constructed per command run because the credentials come from the
// config file resolved at execute time.
type ClientFactory struct{}

// NewClientFactory creates a new client factory.
func NewClientFactory() *ClientFactory {
	return &ClientFactory{}
}

// Workflow builds the Atlantis client for the given settings.
func (f *ClientFactory) Workflow(cfg config.AtlantisConfig) (domainRepos.WorkflowRepository, error) {
	return atlantis.NewAtlantisWorkflowRepository(cfg)
}

// Hosting builds the GitHub client for the given settings.
func (f *ClientFactory) Hosting(cfg config.GitHubConfig) (domainRepos.HostingRepository, error) {
	return github.NewGitHubHostingRepository(cfg)
}

// Discovery builds the Terraform root-module discovery on top of the given
// file access.
func (f *ClientFactory) Discovery(files domainRepos.FileAccessRepository) domainRepos.DiscoveryRepository {
	return terraform.NewTerraformDiscoveryRepository(files)
}
