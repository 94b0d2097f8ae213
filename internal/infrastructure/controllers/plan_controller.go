package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories"
)

// PlanController handles the "plan" subcommand.
type PlanController struct {
	factory *repositories.ClientFactory
}

// NewPlanController creates a new PlanController.
func NewPlanController(factory *repositories.ClientFactory) *PlanController {
	return &PlanController{factory: factory}
}

// GetBind returns the Cobra command metadata for the plan controller.
func (it *PlanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "plan",
		Short: "Trigger a Terraform plan through Atlantis",
		Long: `Trigger a Terraform plan run on the Atlantis server for the given
repository, ref and project paths.

Paths can be passed explicitly with --path, or discovered from the
repository tree with --discover (requires GitHub credentials).`,
	}
}

// Execute triggers the plan run.
func (it *PlanController) Execute(cmd *cobra.Command, _ []string) {
	executeRun(cmd, it.factory, false)
}

// AddFlags adds the plan-specific flags to the given Cobra command.
func (it *PlanController) AddFlags(cmd *cobra.Command) {
	addRunFlags(cmd)
}
