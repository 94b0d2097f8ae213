//nolint:testpackage // Testing internal implementation details
package controllers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
)

func TestSplitRepo(t *testing.T) {
	t.Parallel()

	t.Run("should split an owner/repo identifier", func(t *testing.T) {
		t.Parallel()

		// when
		owner, repo, err := splitRepo("octocat/hello-world")

		// then
		require.NoError(t, err)
		assert.Equal(t, "octocat", owner)
		assert.Equal(t, "hello-world", repo)
	})

	t.Run("should reject an identifier without a slash", func(t *testing.T) {
		t.Parallel()

		// when
		_, _, err := splitRepo("hello-world")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected owner/repo")
	})

	t.Run("should reject an identifier with an empty side", func(t *testing.T) {
		t.Parallel()

		// when
		_, _, err := splitRepo("octocat/")

		// then
		require.Error(t, err)
	})
}

func TestParsePaths(t *testing.T) {
	t.Parallel()

	t.Run("should default the workspace when only a directory is given", func(t *testing.T) {
		t.Parallel()

		// when
		paths := parsePaths([]string{"envs/prod"})

		// then
		assert.Equal(t, []entities.ProjectPath{
			{Directory: "envs/prod", Workspace: "default"},
		}, paths)
	})

	t.Run("should split directory and workspace on the colon", func(t *testing.T) {
		t.Parallel()

		// when
		paths := parsePaths([]string{"envs/prod:production", "envs/dev"})

		// then
		assert.Equal(t, []entities.ProjectPath{
			{Directory: "envs/prod", Workspace: "production"},
			{Directory: "envs/dev", Workspace: "default"},
		}, paths)
	})

	t.Run("should default the workspace on a trailing colon", func(t *testing.T) {
		t.Parallel()

		// when
		paths := parsePaths([]string{"envs/prod:"})

		// then
		assert.Equal(t, []entities.ProjectPath{
			{Directory: "envs/prod", Workspace: "default"},
		}, paths)
	})
}

func TestReadPushFiles(t *testing.T) {
	t.Parallel()

	t.Run("should map remote paths to local file contents", func(t *testing.T) {
		t.Parallel()

		// given
		local := filepath.Join(t.TempDir(), "main.tf")
		require.NoError(t, os.WriteFile(local, []byte("module a"), 0o600))

		// when
		files, err := readPushFiles([]string{"envs/prod/main.tf=" + local})

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"envs/prod/main.tf": "module a"}, files)
	})

	t.Run("should reject a value without a separator", func(t *testing.T) {
		t.Parallel()

		// when
		files, err := readPushFiles([]string{"envs/prod/main.tf"})

		// then
		require.Error(t, err)
		assert.Nil(t, files)
		assert.Contains(t, err.Error(), "invalid --push value")
	})

	t.Run("should return an error when the local file is missing", func(t *testing.T) {
		t.Parallel()

		// when
		files, err := readPushFiles([]string{"main.tf=/nonexistent/main.tf"})

		// then
		require.Error(t, err)
		assert.Nil(t, files)
		assert.Contains(t, err.Error(), "failed to read")
	})
}
