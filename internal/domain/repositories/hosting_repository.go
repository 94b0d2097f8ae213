package repositories

import (
	"context"

	"github.com/rios0rios0/terraforge/internal/domain/entities"
)

// FileAccessRepository is the narrow read-only slice of a hosting provider
// needed to inspect repository contents without a local clone.
type FileAccessRepository interface {
	// ListFiles lists the repository tree at ref, keeping only paths with
	// the given suffix. An empty suffix keeps everything.
	ListFiles(ctx context.Context, owner, repo, ref, suffix string) ([]entities.File, error)

	// GetFileContent returns the decoded content of a file at ref.
	GetFileContent(ctx context.Context, owner, repo, path, ref string) (string, error)
}

// HostingRepository abstracts the source-hosting platform API: repositories,
// webhooks, pull requests, branches, git-tree commits, protection, labels
// and comments.
type HostingRepository interface {
	FileAccessRepository

	// GetRepository resolves owner/repo into a minimal repository view.
	GetRepository(ctx context.Context, owner, repo string) (*entities.Repository, error)

	// CreateWebhook creates a webhook, applying the input defaults.
	CreateWebhook(ctx context.Context, owner, repo string, input entities.WebhookInput) (*entities.Webhook, error)

	// ListWebhooks lists all webhooks of a repository.
	ListWebhooks(ctx context.Context, owner, repo string) ([]entities.Webhook, error)

	// DeleteWebhook fetches and then deletes a webhook by ID.
	DeleteWebhook(ctx context.Context, owner, repo string, hookID int64) error

	// CreatePullRequest opens a pull request.
	CreatePullRequest(ctx context.Context, owner, repo string, input entities.PullRequestInput) (*entities.PullRequest, error)

	// GetPullRequest returns a pull request by number.
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*entities.PullRequest, error)

	// ListPullRequests lists pull requests matching the filter.
	ListPullRequests(ctx context.Context, owner, repo string, filter entities.PullRequestFilter) ([]entities.PullRequest, error)

	// PushFileToBranch commits one file to an existing branch by rebuilding
	// the branch tree. Not atomic against concurrent branch updates.
	PushFileToBranch(ctx context.Context, owner, repo, branch, path, content, message string) (*entities.CommitResult, error)

	// CreateBranch creates a branch pointing at the base branch head.
	CreateBranch(ctx context.Context, owner, repo, branch, baseBranch string) (*entities.BranchResult, error)

	// PushFilesToBranch commits a set of files to an existing branch in a
	// single commit. Not atomic against concurrent branch updates.
	PushFilesToBranch(ctx context.Context, owner, repo, branch string, files map[string]string, message string) (*entities.BatchCommitResult, error)

	// UpdateBranchProtection sets the protection rule of a branch.
	UpdateBranchProtection(ctx context.Context, owner, repo, branch string, input entities.ProtectionInput) (*entities.Protection, error)

	// GetBranchProtection returns the flattened protection rule of a branch.
	GetBranchProtection(ctx context.Context, owner, repo, branch string) (*entities.Protection, error)

	// CreateLabel creates a repository label.
	CreateLabel(ctx context.Context, owner, repo string, input entities.LabelInput) (*entities.Label, error)

	// ListLabels lists all repository labels.
	ListLabels(ctx context.Context, owner, repo string) ([]entities.Label, error)

	// AddLabelToPullRequest adds a label to a pull request by name.
	AddLabelToPullRequest(ctx context.Context, owner, repo string, number int, label string) error

	// RemoveLabelFromPullRequest removes a label from a pull request by name.
	RemoveLabelFromPullRequest(ctx context.Context, owner, repo string, number int, label string) error

	// ListPullRequestLabels lists the labels of a pull request.
	ListPullRequestLabels(ctx context.Context, owner, repo string, number int) ([]entities.Label, error)

	// CreateComment creates a review or issue comment on a pull request,
	// depending on which CommentInput fields are set.
	CreateComment(ctx context.Context, owner, repo string, number int, input entities.CommentInput) (*entities.Comment, error)

	// ListComments lists the issue-style comments of a pull request.
	ListComments(ctx context.Context, owner, repo string, number int) ([]entities.Comment, error)

	// UpdateComment replaces the body of a comment.
	UpdateComment(ctx context.Context, owner, repo string, commentID int64, body string) (*entities.Comment, error)

	// DeleteComment deletes a comment by ID.
	DeleteComment(ctx context.Context, owner, repo string, commentID int64) error

	// ListTags lists repository tags, newest version first.
	ListTags(ctx context.Context, owner, repo string) ([]string, error)
}
