package internal

import (
	"github.com/rios0rios0/terraforge/internal/domain/entities"
)

// AppInternal aggregates the wired controllers for the CLI entrypoint.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates the app aggregate from the controller slice.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
