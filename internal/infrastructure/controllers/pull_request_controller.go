package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/terraforge/internal/domain/repositories"
	"github.com/rios0rios0/terraforge/internal/infrastructure/repositories"
)

// PullRequestController handles the "pr" subcommand: listing and opening
// pull requests, commenting on them, and managing their labels.
type PullRequestController struct {
	factory *repositories.ClientFactory
}

// NewPullRequestController creates a new PullRequestController.
func NewPullRequestController(factory *repositories.ClientFactory) *PullRequestController {
	return &PullRequestController{factory: factory}
}

// GetBind returns the Cobra command metadata for the pull request controller.
func (it *PullRequestController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "pr",
		Short: "Manage GitHub pull requests",
		Long: `List or open pull requests on GitHub, add comments, and attach or
remove labels. Without --create, --comment or a label flag, open pull
requests are listed.`,
	}
}

// Execute dispatches to the requested pull request operation.
func (it *PullRequestController) Execute(cmd *cobra.Command, _ []string) {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		logger.Errorf("Failed to load config: %v", err)
		return
	}

	repoFull, _ := cmd.Flags().GetString("repository")
	if repoFull == "" {
		logger.Error("--repository is required")
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

	create, _ := cmd.Flags().GetBool("create")
	comment, _ := cmd.Flags().GetString("comment")
	addLabel, _ := cmd.Flags().GetString("add-label")
	removeLabel, _ := cmd.Flags().GetString("remove-label")
	number, _ := cmd.Flags().GetInt("number")

	switch {
	case create:
		it.create(ctx, cmd, hosting, owner, repo)
	case comment != "":
		it.comment(ctx, hosting, owner, repo, number, comment)
	case addLabel != "" || removeLabel != "":
		it.labels(ctx, hosting, owner, repo, number, addLabel, removeLabel)
	default:
		it.list(ctx, cmd, hosting, owner, repo)
	}
}

func (it *PullRequestController) list(
	ctx context.Context,
	cmd *cobra.Command,
	hosting domainRepos.HostingRepository,
	owner, repo string,
) {
	state, _ := cmd.Flags().GetString("state")
	base, _ := cmd.Flags().GetString("base")
	head, _ := cmd.Flags().GetString("head")

	prs, err := hosting.ListPullRequests(ctx, owner, repo, entities.PullRequestFilter{
		State: state,
		Base:  base,
		Head:  head,
	})
	if err != nil {
		logger.Errorf("Failed to list pull requests: %v", err)
		return
	}

	printJSON(prs)
}

func (it *PullRequestController) create(
	ctx context.Context,
	cmd *cobra.Command,
	hosting domainRepos.HostingRepository,
	owner, repo string,
) {
	title, _ := cmd.Flags().GetString("title")
	head, _ := cmd.Flags().GetString("head")
	base, _ := cmd.Flags().GetString("base")
	body, _ := cmd.Flags().GetString("body")
	draft, _ := cmd.Flags().GetBool("draft")

	if title == "" || head == "" || base == "" {
		logger.Error("--title, --head and --base are required with --create")
		return
	}

	pr, err := hosting.CreatePullRequest(ctx, owner, repo, entities.PullRequestInput{
		Title: title,
		Head:  head,
		Base:  base,
		Body:  body,
		Draft: draft,
	})
	if err != nil {
		logger.Errorf("Failed to create pull request: %v", err)
		return
	}

	logger.Infof("Created pull request #%d", pr.Number)
	printJSON(pr)
}

func (it *PullRequestController) comment(
	ctx context.Context,
	hosting domainRepos.HostingRepository,
	owner, repo string,
	number int,
	body string,
) {
	if number == 0 {
		logger.Error("--number is required with --comment")
		return
	}

	created, err := hosting.CreateComment(ctx, owner, repo, number, entities.CommentInput{
		Body: body,
	})
	if err != nil {
		logger.Errorf("Failed to comment on pull request #%d: %v", number, err)
		return
	}

	printJSON(created)
}

func (it *PullRequestController) labels(
	ctx context.Context,
	hosting domainRepos.HostingRepository,
	owner, repo string,
	number int,
	addLabel, removeLabel string,
) {
	if number == 0 {
		logger.Error("--number is required with --add-label or --remove-label")
		return
	}

	if addLabel != "" {
		if err := hosting.AddLabelToPullRequest(ctx, owner, repo, number, addLabel); err != nil {
			logger.Errorf("%v", err)
			return
		}
		logger.Infof("Added label %q to pull request #%d", addLabel, number)
	}

	if removeLabel != "" {
		if err := hosting.RemoveLabelFromPullRequest(ctx, owner, repo, number, removeLabel); err != nil {
			logger.Errorf("%v", err)
			return
		}
		logger.Infof("Removed label %q from pull request #%d", removeLabel, number)
	}

	labels, err := hosting.ListPullRequestLabels(ctx, owner, repo, number)
	if err != nil {
		logger.Errorf("Failed to list labels of pull request #%d: %v", number, err)
		return
	}

	printJSON(labels)
}

// AddFlags adds the pull-request-specific flags to the given Cobra command.
func (it *PullRequestController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("repository", "r", "", "Repository in owner/repo form (required)")
	cmd.Flags().IntP("number", "n", 0, "Pull request number")

	cmd.Flags().String("state", "", `Filter by state: "open", "closed" or "all"`)
	cmd.Flags().String("base", "", "Filter by base branch, or base branch for --create")
	cmd.Flags().String("head", "", "Filter by head ref, or head branch for --create")

	cmd.Flags().Bool("create", false, "Open a new pull request")
	cmd.Flags().String("title", "", "Title for --create")
	cmd.Flags().String("body", "", "Body for --create")
	cmd.Flags().Bool("draft", false, "Open the pull request as a draft")

	cmd.Flags().String("comment", "", "Add a comment with the given body")
	cmd.Flags().String("add-label", "", "Add a label to the pull request")
	cmd.Flags().String("remove-label", "", "Remove a label from the pull request")
}
