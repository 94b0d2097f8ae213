package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		NewPlanController,
		NewApplyController,
		NewLocksController,
		NewProjectsController,
		NewServerController,
		NewBranchController,
		NewPullRequestController,
		NewControllers,
	}

	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	planController *PlanController,
	applyController *ApplyController,
	locksController *LocksController,
	projectsController *ProjectsController,
	serverController *ServerController,
	branchController *BranchController,
	pullRequestController *PullRequestController,
) *[]entities.Controller {
	return &[]entities.Controller{
		planController,
		applyController,
		locksController,
		projectsController,
		serverController,
		branchController,
		pullRequestController,
	}
}
