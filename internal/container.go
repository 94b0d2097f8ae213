package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/terraforge/internal/infrastructure/controllers"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories"
)

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	return container.Provide(NewAppInternal)
}
