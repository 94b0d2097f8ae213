package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories"
)

// ProjectsController handles the "projects" subcommand: listing all
// projects, or fetching one project and its status.
type ProjectsController struct {
	factory *repositories.ClientFactory
}

// NewProjectsController creates a new ProjectsController.
func NewProjectsController(factory *repositories.ClientFactory) *ProjectsController {
	return &ProjectsController{factory: factory}
}

// GetBind returns the Cobra command metadata for the projects controller.
func (it *ProjectsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "projects",
		Short: "Inspect Atlantis projects",
		Long: `List all projects known to the Atlantis server. With --repo, fetch a
single project instead; add --status for its lock/plan/apply status.`,
	}
}

// Execute lists projects or shows one project depending on the flags.
func (it *ProjectsController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		return
	}

	workflow, err := it.factory.Workflow(cfg.Atlantis)
	if err != nil {
		logger.Errorf("Failed to build Atlantis client: %v", err)
		return
	}

	repo, _ := cmd.Flags().GetString("repo")
	project, _ := cmd.Flags().GetString("project")
	branch, _ := cmd.Flags().GetString("branch")
	status, _ := cmd.Flags().GetBool("status")

	if repo == "" {
		projects, listErr := workflow.ListProjects(ctx)
		if listErr != nil {
			logger.Errorf("Failed to list projects: %v", listErr)
			return
		}
		printJSON(projects)
		return
	}

	var result map[string]any
	if status {
		result, err = workflow.GetProjectStatus(ctx, repo, project, branch)
	} else {
		result, err = workflow.GetProject(ctx, repo, project, branch)
	}
	if err != nil {
		logger.Errorf("Failed to get project: %v", err)
		return
	}

	printJSON(result)
}

// AddFlags adds the projects-specific flags to the given Cobra command.
func (it *ProjectsController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("repo", "", "Fetch the project of this repository instead of listing")
	cmd.Flags().String("project", "", "Project name within the repository")
	cmd.Flags().String("branch", "", "Branch the project runs on")
	cmd.Flags().Bool("status", false, "Show the lock/plan/apply status of the project")
}
