package controllers

import (
	"context"
	"fmt"
	"os"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories"
)

// BranchController handles the "branch" subcommand: creating a branch and
// optionally pushing files to it in a single commit.
type BranchController struct {
	factory *repositories.ClientFactory
}

// NewBranchController creates a new BranchController.
func NewBranchController(factory *repositories.ClientFactory) *BranchController {
	return &BranchController{factory: factory}
}

// GetBind returns the Cobra command metadata for the branch controller.
func (it *BranchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "branch",
		Short: "Create a GitHub branch and push files to it",
		Long: `Create a branch from a base branch on GitHub. With --push, local files
are committed to the branch afterwards in a single commit, using the
git tree API (no local clone).`,
	}
}

// Execute creates the branch and pushes the requested files.
func (it *BranchController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		return
	}

	repoFull, _ := cmd.Flags().GetString("repository")
	name, _ := cmd.Flags().GetString("name")
	base, _ := cmd.Flags().GetString("base")
	pushes, _ := cmd.Flags().GetStringArray("push")
	message, _ := cmd.Flags().GetString("message")

	if repoFull == "" || name == "" || base == "" {
		logger.Error("--repository, --name and --base are required")
		return
	}

	owner, repo, err := splitRepo(repoFull)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	hosting, err := it.factory.Hosting(cfg.GitHub)
	if err != nil {
		logger.Errorf("Failed to build GitHub client: %v", err)
		return
	}

	branch, err := hosting.CreateBranch(ctx, owner, repo, name, base)
	if err != nil {
		logger.Errorf("Failed to create branch: %v", err)
		return
	}
	logger.Infof("Created branch %q from %q at %s", branch.Branch, branch.BaseBranch, branch.SHA)

	if len(pushes) == 0 {
		printJSON(branch)
		return
	}

	files, err := readPushFiles(pushes)
	if err != nil {
		logger.Errorf("%v", err)
		return
	}

	commit, err := hosting.PushFilesToBranch(ctx, owner, repo, name, files, message)
	if err != nil {
		logger.Errorf("Failed to push files: %v", err)
		return
	}

	printJSON(commit)
}

// readPushFiles turns repeated "remote/path=local/path" flag values into a
// path -> content map.
func readPushFiles(pushes []string) (map[string]string, error) {
	files := make(map[string]string, len(pushes))
	for _, push := range pushes {
		remote, local, ok := strings.Cut(push, "=")
		if !ok || remote == "" || local == "" {
			return nil, fmt.Errorf("invalid --push value %q, expected remote/path=local/path", push)
		}

		data, err := os.ReadFile(local)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", local, err)
		}
		files[remote] = string(data)
	}
	return files, nil
}

// AddFlags adds the branch-specific flags to the given Cobra command.
func (it *BranchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("repository", "r", "", "Repository in owner/repo form (required)")
	cmd.Flags().String("name", "", "Name of the branch to create (required)")
	cmd.Flags().String("base", "", "Base branch to fork from (required)")
	cmd.Flags().StringArray("push", nil,
		`File to push as "remote/path=local/path" (repeatable)`)
	cmd.Flags().String("message", "Update files", "Commit message for --push")
}
