package github

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	gh "github.com/google/go-github/v66/github"
	cleanhttp "github.com/hashicorp/go-cleanhttp"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/terraforge/config"
	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/internal/domain/repositories"
)

const (
	perPage       = 100
	blobMode      = "100644"
	blobType      = "blob"
	blobEncoding  = "utf-8"
	hookName      = "web"
	defaultState  = "open"
	allEventsWild = "*"
)

// GitHubHostingRepository implements repositories.HostingRepository on top
// of the official GitHub API client.
type GitHubHostingRepository struct {
	token  string
	client *gh.Client
}

// NewGitHubHostingRepository creates a hosting repository for github.com or,
// when a base URL is configured, for a GitHub Enterprise instance. It fails
// when no token is supplied.
func NewGitHubHostingRepository(cfg config.GitHubConfig) (repositories.HostingRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = config.DefaultTimeout
	}

	transport := cleanhttp.DefaultPooledTransport()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // explicit opt-in for self-signed test servers
	}

	httpClient := &http.Client{
		Timeout:   time.Duration(timeout) * time.Second,
		Transport: transport,
	}

	client := gh.NewClient(httpClient).WithAuthToken(cfg.Token)
	if cfg.BaseURL != "" {
		enterprise, err := client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github base URL %q: %w", cfg.BaseURL, err)
		}
		client = enterprise
	}

	return &GitHubHostingRepository{
		token:  cfg.Token,
		client: client,
	}, nil
}

// GetRepository resolves owner/repo into a minimal repository view.
func (p *GitHubHostingRepository) GetRepository(
	ctx context.Context,
	owner, repo string,
) (*entities.Repository, error) {
	r, _, err := p.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s/%s: %w", owner, repo, err)
	}

	return &entities.Repository{
		ID:            r.GetID(),
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Owner:         r.GetOwner().GetLogin(),
		DefaultBranch: r.GetDefaultBranch(),
		Private:       r.GetPrivate(),
		URL:           r.GetHTMLURL(),
	}, nil
}

// CreateWebhook creates a webhook. Content type defaults to "json", the
// event list to the all-events wildcard, and the active flag to true.
func (p *GitHubHostingRepository) CreateWebhook(
	ctx context.Context,
	owner, repo string,
	input entities.WebhookInput,
) (*entities.Webhook, error) {
	contentType := input.ContentType
	if contentType == "" {
		contentType = "json"
	}

	events := input.Events
	if len(events) == 0 {
		events = []string{allEventsWild}
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	hookConfig := &gh.HookConfig{
		URL:         gh.String(input.URL),
		ContentType: gh.String(contentType),
	}
	if input.Secret != "" {
		hookConfig.Secret = gh.String(input.Secret)
	}

	hook, _, err := p.client.Repositories.CreateHook(ctx, owner, repo, &gh.Hook{
		Name:   gh.String(hookName),
		Config: hookConfig,
		Events: events,
		Active: gh.Bool(active),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	return toWebhook(hook), nil
}

// ListWebhooks lists all webhooks of a repository.
func (p *GitHubHostingRepository) ListWebhooks(
	ctx context.Context,
	owner, repo string,
) ([]entities.Webhook, error) {
	var all []entities.Webhook
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		hooks, resp, err := p.client.Repositories.ListHooks(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list webhooks: %w", err)
		}

		for _, hook := range hooks {
			all = append(all, *toWebhook(hook))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// DeleteWebhook fetches and then deletes a webhook by ID.
func (p *GitHubHostingRepository) DeleteWebhook(
	ctx context.Context,
	owner, repo string,
	hookID int64,
) error {
	if _, _, err := p.client.Repositories.GetHook(ctx, owner, repo, hookID); err != nil {
		return fmt.Errorf("failed to get webhook %d: %w", hookID, err)
	}

	if _, err := p.client.Repositories.DeleteHook(ctx, owner, repo, hookID); err != nil {
		return fmt.Errorf("failed to delete webhook %d: %w", hookID, err)
	}

	return nil
}

// CreatePullRequest opens a pull request. An unset body becomes the empty
// string rather than being omitted.
func (p *GitHubHostingRepository) CreatePullRequest(
	ctx context.Context,
	owner, repo string,
	input entities.PullRequestInput,
) (*entities.PullRequest, error) {
	pr, _, err := p.client.PullRequests.Create(ctx, owner, repo, &gh.NewPullRequest{
		Title: gh.String(input.Title),
		Head:  gh.String(input.Head),
		Base:  gh.String(input.Base),
		Body:  gh.String(input.Body),
		Draft: gh.Bool(input.Draft),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}

	return toPullRequest(pr), nil
}

// GetPullRequest returns a pull request by number.
func (p *GitHubHostingRepository) GetPullRequest(
	ctx context.Context,
	owner, repo string,
	number int,
) (*entities.PullRequest, error) {
	pr, _, err := p.client.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request #%d: %w", number, err)
	}

	return toPullRequest(pr), nil
}

// ListPullRequests lists pull requests. Filter values are passed through to
// the API unchanged; an empty state defaults to "open".
func (p *GitHubHostingRepository) ListPullRequests(
	ctx context.Context,
	owner, repo string,
	filter entities.PullRequestFilter,
) ([]entities.PullRequest, error) {
	state := filter.State
	if state == "" {
		state = defaultState
	}

	var all []entities.PullRequest
	opts := &gh.PullRequestListOptions{
		State:       state,
		Base:        filter.Base,
		Head:        filter.Head,
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	for {
		prs, resp, err := p.client.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list pull requests: %w", err)
		}

		for _, pr := range prs {
			all = append(all, *toPullRequest(pr))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// PushFileToBranch commits one file to an existing branch: the branch tree
// is rebuilt with every entry except the target path kept as-is and a fresh
// blob appended for the target path. The branch reference is moved last.
// A race with a concurrent branch update is last-write-wins.
func (p *GitHubHostingRepository) PushFileToBranch(
	ctx context.Context,
	owner, repo, branch, path, content, message string,
) (*entities.CommitResult, error) {
	ref, _, err := p.client.Git.GetRef(ctx, owner, repo, "refs/heads/"+branch)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch ref %q: %w", branch, err)
	}

	commit, _, err := p.client.Git.GetCommit(ctx, owner, repo, ref.Object.GetSHA())
	if err != nil {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}

	tree, _, err := p.client.Git.GetTree(ctx, owner, repo, commit.Tree.GetSHA(), true)
	if err != nil {
		return nil, fmt.Errorf("failed to get tree: %w", err)
	}

	blob, _, err := p.client.Git.CreateBlob(ctx, owner, repo, &gh.Blob{
		Content:  gh.String(content),
		Encoding: gh.String(blobEncoding),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create blob: %w", err)
	}

	entries := keepEntriesExcept(tree.Entries, map[string]bool{path: true})
	entries = append(entries, &gh.TreeEntry{
		Path: gh.String(path),
		Mode: gh.String(blobMode),
		Type: gh.String(blobType),
		SHA:  gh.String(blob.GetSHA()),
	})

	newCommit, err := p.commitTree(ctx, owner, repo, tree.GetSHA(), entries, message, commit)
	if err != nil {
		return nil, err
	}

	if updateErr := p.moveBranchRef(ctx, owner, repo, branch, newCommit.GetSHA()); updateErr != nil {
		return nil, updateErr
	}

	return &entities.CommitResult{
		SHA:     newCommit.GetSHA(),
		Branch:  branch,
		Path:    path,
		Message: message,
	}, nil
}

// CreateBranch creates a branch pointing at the base branch head. It fails
// when the target branch already exists, or when the base branch cannot be
// resolved.
func (p *GitHubHostingRepository) CreateBranch(
	ctx context.Context,
	owner, repo, branch, baseBranch string,
) (*entities.BranchResult, error) {
	_, _, err := p.client.Git.GetRef(ctx, owner, repo, "refs/heads/"+branch)
	if err == nil {
		return nil, fmt.Errorf("branch %q already exists", branch)
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("failed to check branch %q: %w", branch, err)
	}

	baseRef, _, err := p.client.Git.GetRef(ctx, owner, repo, "refs/heads/"+baseBranch)
	if err != nil {
		return nil, fmt.Errorf("base branch %q not found: %w", baseBranch, err)
	}

	branchRef := "refs/heads/" + branch
	_, _, err = p.client.Git.CreateRef(ctx, owner, repo, &gh.Reference{
		Ref:    gh.String(branchRef),
		Object: &gh.GitObject{SHA: baseRef.Object.SHA},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create branch %q: %w", branch, err)
	}

	return &entities.BranchResult{
		Branch:     branch,
		BaseBranch: baseBranch,
		SHA:        baseRef.Object.GetSHA(),
	}, nil
}

// PushFilesToBranch commits a set of path -> content pairs to an existing
// branch in a single commit. Entries outside the update set are kept; every
// path in the set gets a fresh blob, whether it existed before or not.
func (p *GitHubHostingRepository) PushFilesToBranch(
	ctx context.Context,
	owner, repo, branch string,
	files map[string]string,
	message string,
) (*entities.BatchCommitResult, error) {
	ref, _, err := p.client.Git.GetRef(ctx, owner, repo, "refs/heads/"+branch)
	if err != nil {
		return nil, fmt.Errorf("branch %q not found: %w", branch, err)
	}

	commit, _, err := p.client.Git.GetCommit(ctx, owner, repo, ref.Object.GetSHA())
	if err != nil {
		return nil, fmt.Errorf("failed to get commit: %w", err)
	}

	tree, _, err := p.client.Git.GetTree(ctx, owner, repo, commit.Tree.GetSHA(), true)
	if err != nil {
		return nil, fmt.Errorf("failed to get tree: %w", err)
	}

	updated := make(map[string]bool, len(files))
	paths := make([]string, 0, len(files))
	for path := range files {
		updated[path] = true
		paths = append(paths, path)
	}
	sort.Strings(paths)

	entries := keepEntriesExcept(tree.Entries, updated)
	for _, path := range paths {
		blob, _, blobErr := p.client.Git.CreateBlob(ctx, owner, repo, &gh.Blob{
			Content:  gh.String(files[path]),
			Encoding: gh.String(blobEncoding),
		})
		if blobErr != nil {
			return nil, fmt.Errorf("failed to create blob for %q: %w", path, blobErr)
		}

		entries = append(entries, &gh.TreeEntry{
			Path: gh.String(path),
			Mode: gh.String(blobMode),
			Type: gh.String(blobType),
			SHA:  gh.String(blob.GetSHA()),
		})
	}

	newCommit, err := p.commitTree(ctx, owner, repo, tree.GetSHA(), entries, message, commit)
	if err != nil {
		return nil, err
	}

	if updateErr := p.moveBranchRef(ctx, owner, repo, branch, newCommit.GetSHA()); updateErr != nil {
		return nil, updateErr
	}

	return &entities.BatchCommitResult{
		SHA:     newCommit.GetSHA(),
		Branch:  branch,
		Files:   paths,
		Message: message,
	}, nil
}

// UpdateBranchProtection sets the protection rule of a branch.
func (p *GitHubHostingRepository) UpdateBranchProtection(
	ctx context.Context,
	owner, repo, branch string,
	input entities.ProtectionInput,
) (*entities.Protection, error) {
	request := &gh.ProtectionRequest{
		EnforceAdmins:    input.EnforceAdmins,
		AllowForcePushes: gh.Bool(input.AllowForcePushes),
		AllowDeletions:   gh.Bool(input.AllowDeletions),
	}

	if input.StatusChecks != nil {
		contexts := input.StatusChecks.Contexts
		request.RequiredStatusChecks = &gh.RequiredStatusChecks{
			Strict:   input.StatusChecks.Strict,
			Contexts: &contexts,
		}
	}

	if input.Reviews != nil {
		request.RequiredPullRequestReviews = &gh.PullRequestReviewsEnforcementRequest{
			RequiredApprovingReviewCount: input.Reviews.RequiredApprovingReviewCount,
			DismissStaleReviews:          input.Reviews.DismissStaleReviews,
			RequireCodeOwnerReviews:      input.Reviews.RequireCodeOwnerReviews,
		}
	}

	if input.Restrictions != nil {
		request.Restrictions = &gh.BranchRestrictionsRequest{
			Users: input.Restrictions.Users,
			Teams: input.Restrictions.Teams,
			Apps:  []string{},
		}
	}

	protection, _, err := p.client.Repositories.UpdateBranchProtection(ctx, owner, repo, branch, request)
	if err != nil {
		return nil, fmt.Errorf("failed to update branch protection for %q: %w", branch, err)
	}

	return toProtection(protection), nil
}

// GetBranchProtection returns the flattened protection rule of a branch.
func (p *GitHubHostingRepository) GetBranchProtection(
	ctx context.Context,
	owner, repo, branch string,
) (*entities.Protection, error) {
	protection, _, err := p.client.Repositories.GetBranchProtection(ctx, owner, repo, branch)
	if err != nil {
		return nil, fmt.Errorf("failed to get branch protection for %q: %w", branch, err)
	}

	return toProtection(protection), nil
}

// CreateLabel creates a repository label.
func (p *GitHubHostingRepository) CreateLabel(
	ctx context.Context,
	owner, repo string,
	input entities.LabelInput,
) (*entities.Label, error) {
	label := &gh.Label{
		Name:  gh.String(input.Name),
		Color: gh.String(input.Color),
	}
	if input.Description != "" {
		label.Description = gh.String(input.Description)
	}

	created, _, err := p.client.Issues.CreateLabel(ctx, owner, repo, label)
	if err != nil {
		return nil, fmt.Errorf("failed to create label %q: %w", input.Name, err)
	}

	return toLabel(created), nil
}

// ListLabels lists all repository labels.
func (p *GitHubHostingRepository) ListLabels(
	ctx context.Context,
	owner, repo string,
) ([]entities.Label, error) {
	var all []entities.Label
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		labels, resp, err := p.client.Issues.ListLabels(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list labels: %w", err)
		}

		for _, label := range labels {
			all = append(all, *toLabel(label))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// AddLabelToPullRequest adds a label to a pull request by name.
func (p *GitHubHostingRepository) AddLabelToPullRequest(
	ctx context.Context,
	owner, repo string,
	number int,
	label string,
) error {
	_, _, err := p.client.Issues.AddLabelsToIssue(ctx, owner, repo, number, []string{label})
	if err != nil {
		return fmt.Errorf("failed to add label %q to pull request #%d: %w", label, number, err)
	}
	return nil
}

// RemoveLabelFromPullRequest removes a label from a pull request by name.
func (p *GitHubHostingRepository) RemoveLabelFromPullRequest(
	ctx context.Context,
	owner, repo string,
	number int,
	label string,
) error {
	_, err := p.client.Issues.RemoveLabelForIssue(ctx, owner, repo, number, label)
	if err != nil {
		return fmt.Errorf("failed to remove label %q from pull request #%d: %w", label, number, err)
	}
	return nil
}

// ListPullRequestLabels lists the labels of a pull request.
func (p *GitHubHostingRepository) ListPullRequestLabels(
	ctx context.Context,
	owner, repo string,
	number int,
) ([]entities.Label, error) {
	var all []entities.Label
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		labels, resp, err := p.client.Issues.ListLabelsByIssue(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list labels of pull request #%d: %w", number, err)
		}

		for _, label := range labels {
			all = append(all, *toLabel(label))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// CreateComment creates a comment on a pull request. When commit SHA, file
// path and line are all set, a line-anchored review comment is created;
// otherwise a plain issue comment.
func (p *GitHubHostingRepository) CreateComment(
	ctx context.Context,
	owner, repo string,
	number int,
	input entities.CommentInput,
) (*entities.Comment, error) {
	if input.CommitID != "" && input.Path != "" && input.Line > 0 {
		comment := &gh.PullRequestComment{
			Body:     gh.String(input.Body),
			CommitID: gh.String(input.CommitID),
			Path:     gh.String(input.Path),
			Line:     gh.Int(input.Line),
		}
		if input.Side != "" {
			comment.Side = gh.String(input.Side)
		}

		created, _, err := p.client.PullRequests.CreateComment(ctx, owner, repo, number, comment)
		if err != nil {
			return nil, fmt.Errorf("failed to create review comment: %w", err)
		}

		return &entities.Comment{
			ID:       created.GetID(),
			Body:     created.GetBody(),
			User:     created.GetUser().GetLogin(),
			CommitID: created.GetCommitID(),
			Path:     created.GetPath(),
			Line:     created.GetLine(),
			URL:      created.GetHTMLURL(),
		}, nil
	}

	created, _, err := p.client.Issues.CreateComment(ctx, owner, repo, number, &gh.IssueComment{
		Body: gh.String(input.Body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return toComment(created), nil
}

// ListComments lists the issue-style comments of a pull request.
func (p *GitHubHostingRepository) ListComments(
	ctx context.Context,
	owner, repo string,
	number int,
) ([]entities.Comment, error) {
	var all []entities.Comment
	opts := &gh.IssueListCommentsOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	for {
		comments, resp, err := p.client.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments of pull request #%d: %w", number, err)
		}

		for _, comment := range comments {
			all = append(all, *toComment(comment))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// UpdateComment replaces the body of a comment.
func (p *GitHubHostingRepository) UpdateComment(
	ctx context.Context,
	owner, repo string,
	commentID int64,
	body string,
) (*entities.Comment, error) {
	updated, _, err := p.client.Issues.EditComment(ctx, owner, repo, commentID, &gh.IssueComment{
		Body: gh.String(body),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update comment %d: %w", commentID, err)
	}

	return toComment(updated), nil
}

// DeleteComment deletes a comment by ID.
func (p *GitHubHostingRepository) DeleteComment(
	ctx context.Context,
	owner, repo string,
	commentID int64,
) error {
	if _, err := p.client.Issues.DeleteComment(ctx, owner, repo, commentID); err != nil {
		return fmt.Errorf("failed to delete comment %d: %w", commentID, err)
	}
	return nil
}

// ListTags lists repository tags sorted descending by semantic version,
// with non-semver tags last.
func (p *GitHubHostingRepository) ListTags(
	ctx context.Context,
	owner, repo string,
) ([]string, error) {
	var all []string
	opts := &gh.ListOptions{PerPage: perPage}

	for {
		tags, resp, err := p.client.Repositories.ListTags(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list tags: %w", err)
		}

		for _, tag := range tags {
			all = append(all, tag.GetName())
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	sortVersionsDescending(all)
	return all, nil
}

// ListFiles lists the repository tree at ref, keeping paths with the given
// suffix. An empty suffix keeps everything.
func (p *GitHubHostingRepository) ListFiles(
	ctx context.Context,
	owner, repo, ref, suffix string,
) ([]entities.File, error) {
	tree, _, err := p.client.Git.GetTree(ctx, owner, repo, ref, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get repo tree: %w", err)
	}

	var files []entities.File
	for _, entry := range tree.Entries {
		if suffix != "" && !strings.HasSuffix(entry.GetPath(), suffix) {
			continue
		}
		files = append(files, entities.File{
			Path:     entry.GetPath(),
			ObjectID: entry.GetSHA(),
			IsDir:    entry.GetType() == "tree",
		})
	}

	return files, nil
}

// GetFileContent returns the decoded content of a file at ref.
func (p *GitHubHostingRepository) GetFileContent(
	ctx context.Context,
	owner, repo, path, ref string,
) (string, error) {
	fileContent, _, _, err := p.client.Repositories.GetContents(
		ctx, owner, repo, path,
		&gh.RepositoryContentGetOptions{Ref: ref},
	)
	if err != nil {
		return "", fmt.Errorf("failed to get file %q: %w", path, err)
	}
	if fileContent == nil {
		return "", fmt.Errorf("path %q is a directory, not a file", path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode file content: %w", err)
	}

	return content, nil
}

// commitTree creates a tree on top of baseTree and a commit with parent.
func (p *GitHubHostingRepository) commitTree(
	ctx context.Context,
	owner, repo, baseTree string,
	entries []*gh.TreeEntry,
	message string,
	parent *gh.Commit,
) (*gh.Commit, error) {
	newTree, _, err := p.client.Git.CreateTree(ctx, owner, repo, baseTree, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to create tree: %w", err)
	}

	newCommit, _, err := p.client.Git.CreateCommit(
		ctx, owner, repo,
		&gh.Commit{
			Message: gh.String(message),
			Tree:    newTree,
			Parents: []*gh.Commit{{SHA: parent.SHA}},
		},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create commit: %w", err)
	}

	return newCommit, nil
}

// moveBranchRef points the branch at the given commit. This is the only
// step that changes externally visible state.
func (p *GitHubHostingRepository) moveBranchRef(
	ctx context.Context,
	owner, repo, branch, sha string,
) error {
	_, _, err := p.client.Git.UpdateRef(ctx, owner, repo, &gh.Reference{
		Ref:    gh.String("refs/heads/" + branch),
		Object: &gh.GitObject{SHA: gh.String(sha)},
	}, false)
	if err != nil {
		return fmt.Errorf("failed to update branch ref %q: %w", branch, err)
	}
	return nil
}

// keepEntriesExcept copies tree entries whose paths are not in the skip set.
func keepEntriesExcept(entries []*gh.TreeEntry, skip map[string]bool) []*gh.TreeEntry {
	kept := make([]*gh.TreeEntry, 0, len(entries))
	for _, entry := range entries {
		if skip[entry.GetPath()] {
			continue
		}
		kept = append(kept, &gh.TreeEntry{
			Path: entry.Path,
			Mode: entry.Mode,
			Type: entry.Type,
			SHA:  entry.SHA,
		})
	}
	return kept
}

func isNotFound(err error) bool {
	var ghErr *gh.ErrorResponse
	return errors.As(err, &ghErr) &&
		ghErr.Response != nil &&
		ghErr.Response.StatusCode == http.StatusNotFound
}

func toWebhook(hook *gh.Hook) *entities.Webhook {
	return &entities.Webhook{
		ID:     hook.GetID(),
		URL:    hook.GetConfig().GetURL(),
		Events: hook.Events,
		Active: hook.GetActive(),
	}
}

func toPullRequest(pr *gh.PullRequest) *entities.PullRequest {
	return &entities.PullRequest{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		Body:   pr.GetBody(),
		State:  pr.GetState(),
		Head:   pr.GetHead().GetRef(),
		Base:   pr.GetBase().GetRef(),
		Draft:  pr.GetDraft(),
		URL:    pr.GetHTMLURL(),
	}
}

func toLabel(label *gh.Label) *entities.Label {
	return &entities.Label{
		ID:          label.GetID(),
		Name:        label.GetName(),
		Color:       label.GetColor(),
		Description: label.GetDescription(),
	}
}

func toComment(comment *gh.IssueComment) *entities.Comment {
	return &entities.Comment{
		ID:   comment.GetID(),
		Body: comment.GetBody(),
		User: comment.GetUser().GetLogin(),
		URL:  comment.GetHTMLURL(),
	}
}

func toProtection(protection *gh.Protection) *entities.Protection {
	out := &entities.Protection{}
	if admins := protection.GetEnforceAdmins(); admins != nil {
		out.EnforceAdmins = admins.Enabled
	}

	if checks := protection.GetRequiredStatusChecks(); checks != nil {
		policy := &entities.StatusCheckPolicy{Strict: checks.Strict}
		if checks.Contexts != nil {
			policy.Contexts = *checks.Contexts
		}
		out.StatusChecks = policy
	}

	if reviews := protection.GetRequiredPullRequestReviews(); reviews != nil {
		out.Reviews = &entities.ReviewPolicy{
			RequiredApprovingReviewCount: reviews.RequiredApprovingReviewCount,
			DismissStaleReviews:          reviews.DismissStaleReviews,
			RequireCodeOwnerReviews:      reviews.RequireCodeOwnerReviews,
		}
	}

	if restrictions := protection.GetRestrictions(); restrictions != nil {
		policy := &entities.RestrictionPolicy{}
		for _, user := range restrictions.Users {
			policy.Users = append(policy.Users, user.GetLogin())
		}
		for _, team := range restrictions.Teams {
			policy.Teams = append(policy.Teams, team.GetSlug())
		}
		out.Restrictions = policy
	}

	return out
}

// --- version sorting ---

func sortVersionsDescending(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		v1 := normalizeVersion(versions[i])
		v2 := normalizeVersion(versions[j])
		if semver.IsValid(v1) && semver.IsValid(v2) {
			return semver.Compare(v1, v2) > 0
		}
		if semver.IsValid(v1) != semver.IsValid(v2) {
			return semver.IsValid(v1)
		}
		return versions[i] > versions[j]
	})
}

func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
