package entities

// PullRequest is a minimal view of a hosted pull request.
type PullRequest struct {
	Number int
	Title  string
	Body   string
	State  string
	Head   string
	Base   string
	Draft  bool
	URL    string
}

// PullRequestInput holds the fields to create a pull request.
type PullRequestInput struct {
	Title string
	Head  string
	Base  string
	Body  string
	Draft bool
}

// PullRequestFilter narrows a pull request listing. Empty fields mean
// "no filter"; an empty State defaults to "open".
type PullRequestFilter struct {
	State string
	Base  string
	Head  string
}
