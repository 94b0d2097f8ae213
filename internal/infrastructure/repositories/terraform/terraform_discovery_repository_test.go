//nolint:testpackage // Testing internal implementation details
package terraform

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	testdoubles "github.com/rios0rios0/terraforge/test"
)

func TestTerraformDiscoveryRepository_DiscoverProjects(t *testing.T) {
	t.Parallel()

	t.Run("should return one project per root-module directory in sorted order", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyFileAccess{
			Files: []entities.File{
				{Path: "main.tf"},
				{Path: "envs/prod/main.tf"},
				{Path: "modules/vpc/main.tf"},
			},
			FileContents: map[string]string{
				"main.tf": `
					terraform {
					  backend "s3" {
					    bucket = "state"
					  }
					}
				`,
				"envs/prod/main.tf": `
					terraform {
					  required_version = ">= 1.5.0"
					}
				`,
				"modules/vpc/main.tf": `
					resource "aws_vpc" "this" {
					  cidr_block = "10.0.0.0/16"
					}
				`,
			},
		}
		repo := NewTerraformDiscoveryRepository(spy)

		// when
		projects, err := repo.DiscoverProjects(context.Background(), "octo", "infra", "main")

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.ProjectPath{
			{Directory: ".", Workspace: "default"},
			{Directory: "envs/prod", Workspace: "default"},
		}, projects)
		assert.Equal(t, []string{".tf"}, spy.ListedSuffixes)
	})

	t.Run("should skip directory entries and unreadable files", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyFileAccess{
			Files: []entities.File{
				{Path: "modules", IsDir: true},
				{Path: "broken/main.tf"},
			},
			FileContentErr: errors.New("boom"),
		}
		repo := NewTerraformDiscoveryRepository(spy)

		// when
		projects, err := repo.DiscoverProjects(context.Background(), "octo", "infra", "main")

		// then
		require.NoError(t, err)
		assert.Empty(t, projects)
		assert.Equal(t, []string{"broken/main.tf"}, spy.ReadPaths)
	})

	t.Run("should return an error when the file listing fails", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyFileAccess{
			ListFilesErr: errors.New("api down"),
		}
		repo := NewTerraformDiscoveryRepository(spy)

		// when
		projects, err := repo.DiscoverProjects(context.Background(), "octo", "infra", "main")

		// then
		require.Error(t, err)
		assert.Nil(t, projects)
		assert.Contains(t, err.Error(), "failed to list terraform files")
	})

	t.Run("should stop reading a directory after the first root-module file", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &testdoubles.SpyFileAccess{
			Files: []entities.File{
				{Path: "versions.tf"},
				{Path: "main.tf"},
			},
			FileContents: map[string]string{
				"versions.tf": `
					terraform {
					  required_version = "~> 1.6"
					}
				`,
				"main.tf": `resource "null_resource" "x" {}`,
			},
		}
		repo := NewTerraformDiscoveryRepository(spy)

		// when
		projects, err := repo.DiscoverProjects(context.Background(), "octo", "infra", "main")

		// then
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, ".", projects[0].Directory)
		assert.Equal(t, []string{"versions.tf"}, spy.ReadPaths)
	})
}

func TestIsRootModule(t *testing.T) {
	t.Parallel()

	t.Run("should detect a backend block", func(t *testing.T) {
		t.Parallel()

		// given
		content := `
			terraform {
			  backend "s3" {
			    bucket = "state"
			  }
			}
		`

		// when
		result := isRootModule(content, "main.tf")

		// then
		assert.True(t, result)
	})

	t.Run("should detect a cloud block", func(t *testing.T) {
		t.Parallel()

		// given
		content := `
			terraform {
			  cloud {
			    organization = "acme"
			  }
			}
		`

		// when
		result := isRootModule(content, "main.tf")

		// then
		assert.True(t, result)
	})

	t.Run("should detect a required_version constraint", func(t *testing.T) {
		t.Parallel()

		// given
		content := `
			terraform {
			  required_version = ">= 1.5.0"
			}
		`

		// when
		result := isRootModule(content, "versions.tf")

		// then
		assert.True(t, result)
	})

	t.Run("should reject a file without a terraform block", func(t *testing.T) {
		t.Parallel()

		// given
		content := `
			resource "aws_vpc" "this" {
			  cidr_block = "10.0.0.0/16"
			}
		`

		// when
		result := isRootModule(content, "main.tf")

		// then
		assert.False(t, result)
	})

	t.Run("should reject a terraform block with only provider requirements", func(t *testing.T) {
		t.Parallel()

		// given
		content := `
			terraform {
			  required_providers {
			    aws = {
			      source = "hashicorp/aws"
			    }
			  }
			}
		`

		// when
		result := isRootModule(content, "versions.tf")

		// then
		assert.False(t, result)
	})

	t.Run("should reject content that is not valid HCL", func(t *testing.T) {
		t.Parallel()

		// given
		content := `terraform { backend "s3" {`

		// when
		result := isRootModule(content, "main.tf")

		// then
		assert.False(t, result)
	})
}
