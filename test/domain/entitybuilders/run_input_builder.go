//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
)

// RunInputBuilder helps create test run inputs with a fluent interface.
type RunInputBuilder struct {
	*testkit.BaseBuilder
	repository string
	ref        string
	vcsType    string
	paths      []entities.ProjectPath
	pr         int
}

// NewRunInputBuilder creates a new run input builder with sensible defaults.
func NewRunInputBuilder() *RunInputBuilder {
	return &RunInputBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		repository:  "octocat/hello-world",
		ref:         "main",
		vcsType:     "Github",
		paths: []entities.ProjectPath{
			{Directory: ".", Workspace: "default"},
		},
		pr: 0,
	}
}

// WithRepository sets the repository identifier.
func (b *RunInputBuilder) WithRepository(repository string) *RunInputBuilder {
	b.repository = repository
	return b
}

// WithRef sets the git ref.
func (b *RunInputBuilder) WithRef(ref string) *RunInputBuilder {
	b.ref = ref
	return b
}

// WithType sets the VCS provider type.
func (b *RunInputBuilder) WithType(vcsType string) *RunInputBuilder {
	b.vcsType = vcsType
	return b
}

// WithPaths sets the project paths.
func (b *RunInputBuilder) WithPaths(paths []entities.ProjectPath) *RunInputBuilder {
	b.paths = paths
	return b
}

// WithPR sets the pull request number.
func (b *RunInputBuilder) WithPR(pr int) *RunInputBuilder {
	b.pr = pr
	return b
}

// Build creates the run input (satisfies testkit.Builder interface).
func (b *RunInputBuilder) Build() interface{} {
	return b.BuildRunInput()
}

// BuildRunInput creates the run input with a concrete return type.
func (b *RunInputBuilder) BuildRunInput() entities.RunInput {
	return entities.RunInput{
		Repository: b.repository,
		Ref:        b.ref,
		Type:       b.vcsType,
		Paths:      b.paths,
		PR:         b.pr,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *RunInputBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.repository = "octocat/hello-world"
	b.ref = "main"
	b.vcsType = "Github"
	b.paths = []entities.ProjectPath{
		{Directory: ".", Workspace: "default"},
	}
	b.pr = 0
	return b
}

// Clone creates a deep copy of the RunInputBuilder.
func (b *RunInputBuilder) Clone() testkit.Builder {
	paths := make([]entities.ProjectPath, len(b.paths))
	copy(paths, b.paths)
	return &RunInputBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		repository:  b.repository,
		ref:         b.ref,
		vcsType:     b.vcsType,
		paths:       paths,
		pr:          b.pr,
	}
}
