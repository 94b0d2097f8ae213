package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories"
)

// addRunFlags binds the flags shared by the plan and apply subcommands.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("repository", "r", "", "Repository in owner/repo form (required)")
	cmd.Flags().String("ref", "", "Git ref (branch or commit) to run against (required)")
	cmd.Flags().String("type", "Github", "VCS provider type (Github, Gitlab, Bitbucket)")
	cmd.Flags().StringArray("path", nil,
		`Project path as "dir" or "dir:workspace" (repeatable)`)
	cmd.Flags().Int("pr", 0, "Pull request number to attach the run to")
	cmd.Flags().Bool("discover", false,
		"Discover Terraform root modules through the GitHub tree instead of --path")
}

// executeRun drives one plan or apply call against the Atlantis server.
func executeRun(cmd *cobra.Command, factory *repositories.ClientFactory, apply bool) {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		return
	}

	repoFull, _ := cmd.Flags().GetString("repository")
	ref, _ := cmd.Flags().GetString("ref")
	vcsType, _ := cmd.Flags().GetString("type")
	rawPaths, _ := cmd.Flags().GetStringArray("path")
	pr, _ := cmd.Flags().GetInt("pr")
	discover, _ := cmd.Flags().GetBool("discover")

	if repoFull == "" || ref == "" {
		logger.Error("Both --repository and --ref are required")
		return
	}

	input := entities.RunInput{
		Repository: repoFull,
		Ref:        ref,
		Type:       vcsType,
		PR:         pr,
	}

	if discover {
		owner, name, splitErr := splitRepo(repoFull)
		if splitErr != nil {
			logger.Errorf("%v", splitErr)
			return
		}

		hosting, hostingErr := factory.Hosting(cfg.GitHub)
		if hostingErr != nil {
			logger.Errorf("Failed to build GitHub client: %v", hostingErr)
			return
		}

		paths, discoverErr := factory.Discovery(hosting).DiscoverProjects(ctx, owner, name, ref)
		if discoverErr != nil {
			logger.Errorf("Failed to discover Terraform projects: %v", discoverErr)
			return
		}
		if len(paths) == 0 {
			logger.Errorf("No Terraform root modules found in %s@%s", repoFull, ref)
			return
		}
		input.Paths = paths
	} else {
		input.Paths = parsePaths(rawPaths)
		if len(input.Paths) == 0 {
			logger.Error("At least one --path is required (or use --discover)")
			return
		}
	}

	workflow, err := factory.Workflow(cfg.Atlantis)
	if err != nil {
		logger.Errorf("Failed to build Atlantis client: %v", err)
		return
	}

	var result map[string]any
	if apply {
		result, err = workflow.Apply(ctx, input)
	} else {
		result, err = workflow.Plan(ctx, input)
	}
	if err != nil {
		logger.Errorf("Run failed: %v", err)
		return
	}

	printJSON(result)
}
