package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories"
)

// LocksController handles the "locks" subcommand: listing locks and
// deleting a stuck one.
type LocksController struct {
	factory *repositories.ClientFactory
}

// NewLocksController creates a new LocksController.
func NewLocksController(factory *repositories.ClientFactory) *LocksController {
	return &LocksController{factory: factory}
}

// GetBind returns the Cobra command metadata for the locks controller.
func (it *LocksController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "locks",
		Short: "List or delete Atlantis locks",
		Long: `List the locks currently held by the Atlantis server, optionally
filtered by repository, or delete a stuck lock by ID.`,
	}
}

// Execute lists or deletes locks depending on the flags.
func (it *LocksController) Execute(cmd *cobra.Command, _ []string) {
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
	deleteID, _ := cmd.Flags().GetString("delete")

	if deleteID != "" {
		result, deleteErr := workflow.DeleteLock(ctx, deleteID, repo, project)
		if deleteErr != nil {
			logger.Errorf("Failed to delete lock %q: %v", deleteID, deleteErr)
			return
		}
		logger.Infof("Deleted lock %q", deleteID)
		printJSON(result)
		return
	}

	locks, err := workflow.ListLocks(ctx, repo)
	if err != nil {
		logger.Errorf("Failed to list locks: %v", err)
		return
	}

	printJSON(locks)
}

// AddFlags adds the locks-specific flags to the given Cobra command.
func (it *LocksController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("repo", "", "Only show locks of this repository")
	cmd.Flags().String("project", "", "Project name, used when deleting a lock")
	cmd.Flags().String("delete", "", "Delete the lock with this ID instead of listing")
}
