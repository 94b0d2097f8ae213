package entities

// CommitResult describes a single-file commit pushed to a branch.
type CommitResult struct {
	SHA     string
	Branch  string
	Path    string
	Message string
}

// BatchCommitResult describes a multi-file commit pushed to a branch.
// Files holds the paths that were created or updated.
type BatchCommitResult struct {
	SHA     string
	Branch  string
	Files   []string
	Message string
}

// BranchResult describes a newly created branch and the commit it points at.
type BranchResult struct {
	Branch     string
	BaseBranch string
	SHA        string
}
