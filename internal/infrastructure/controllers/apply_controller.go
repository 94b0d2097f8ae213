package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories"
)

// ApplyController handles the "apply" subcommand.
type ApplyController struct {
	factory *repositories.ClientFactory
}

// NewApplyController creates a new ApplyController.
func NewApplyController(factory *repositories.ClientFactory) *ApplyController {
	return &ApplyController{factory: factory}
}

// GetBind returns the Cobra command metadata for the apply controller.
func (it *ApplyController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "apply",
		Short: "Trigger a Terraform apply through Atlantis",
		Long: `Trigger a Terraform apply run on the Atlantis server for the given
repository, ref and project paths.

Paths can be passed explicitly with --path, or discovered from the
repository tree with --discover (requires GitHub credentials).`,
	}
}

// Execute triggers the apply run.
func (it *ApplyController) Execute(cmd *cobra.Command, _ []string) {
	executeRun(cmd, it.factory, true)
}

// AddFlags adds the apply-specific flags to the given Cobra command.
func (it *ApplyController) AddFlags(cmd *cobra.Command) {
	addRunFlags(cmd)
}
