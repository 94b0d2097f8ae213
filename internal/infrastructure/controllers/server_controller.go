package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories"
)

// ServerController handles the "server" subcommand: version, health and
// recent events of the Atlantis server.
type ServerController struct {
	factory *repositories.ClientFactory
}

// NewServerController creates a new ServerController.
func NewServerController(factory *repositories.ClientFactory) *ServerController {
	return &ServerController{factory: factory}
}

// GetBind returns the Cobra command metadata for the server controller.
func (it *ServerController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "server",
		Short: "Show Atlantis server version, health and events",
		Long: `Query the Atlantis server for its version and health status, and
optionally the most recent events.`,
	}
}

// Execute prints the server version, health and optionally events.
func (it *ServerController) Execute(cmd *cobra.Command, _ []string) {
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

	version, err := workflow.GetVersion(ctx)
	if err != nil {
		logger.Errorf("Failed to get version: %v", err)
		return
	}

	health, err := workflow.GetHealth(ctx)
	if err != nil {
		logger.Errorf("Failed to get health: %v", err)
		return
	}

	output := map[string]any{
		"version": version,
		"health":  health,
	}

	if limit, _ := cmd.Flags().GetInt("events"); limit > 0 {
		events, eventsErr := workflow.ListEvents(ctx, limit)
		if eventsErr != nil {
			logger.Errorf("Failed to list events: %v", eventsErr)
			return
		}
		output["events"] = events
	}

	printJSON(output)
}

// AddFlags adds the server-specific flags to the given Cobra command.
func (it *ServerController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Int("events", 0, "Also show this many recent server events")
}
