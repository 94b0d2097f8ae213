package entities

// Comment is a minimal view of a pull request comment, either a plain
// issue-style comment or a line-anchored review comment.
type Comment struct {
	ID       int64
	Body     string
	User     string
	CommitID string
	Path     string
	Line     int
	URL      string
}

// CommentInput holds the fields to create a comment. When CommitID, Path
// and Line are all set, a line-anchored review comment is created; in every
// other case a plain issue comment is created. Side ("LEFT" or "RIGHT")
// only applies to review comments.
type CommentInput struct {
	Body     string
	CommitID string
	Path     string
	Line     int
	Side     string
}
