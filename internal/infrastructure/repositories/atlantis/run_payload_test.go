//go:build integration || unit || test

//nolint:testpackage // Testing internal implementation details
package atlantis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/test/domain/entitybuilders"
)

func TestNewRunPayload(t *testing.T) {
	t.Parallel()

	t.Run("should carry all run input fields into the payload", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewRunInputBuilder().
			WithRepository("octocat/infra").
			WithRef("feature/vpc").
			WithPR(42).
			BuildRunInput()

		// when
		payload := newRunPayload(input)

		// then
		assert.Equal(t, "octocat/infra", payload.Repository)
		assert.Equal(t, "feature/vpc", payload.Ref)
		assert.Equal(t, "Github", payload.Type)
		assert.Equal(t, []entities.ProjectPath{
			{Directory: ".", Workspace: "default"},
		}, payload.Paths)
		assert.Equal(t, 42, payload.PR)
	})

	t.Run("should leave the pull request number at zero by default", func(t *testing.T) {
		t.Parallel()

		// given
		input := entitybuilders.NewRunInputBuilder().BuildRunInput()

		// when
		payload := newRunPayload(input)

		// then
		assert.Zero(t, payload.PR)
	})

	t.Run("should build independent inputs from a cloned builder", func(t *testing.T) {
		t.Parallel()

		// given
		builder := entitybuilders.NewRunInputBuilder().WithRef("main")
		clone, ok := builder.Clone().(*entitybuilders.RunInputBuilder)
		assert.True(t, ok)

		// when
		original := builder.BuildRunInput()
		modified := clone.WithRef("develop").BuildRunInput()

		// then
		assert.Equal(t, "main", original.Ref)
		assert.Equal(t, "develop", modified.Ref)
	})
}
