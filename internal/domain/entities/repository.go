package entities

// Repository is a minimal view of a hosted repository.
type Repository struct {
	ID            int64
	Name          string
	FullName      string
	Owner         string
	DefaultBranch string
	Private       bool
	URL           string
}

// File is one entry of a repository tree listing.
type File struct {
	Path     string
	ObjectID string
	IsDir    bool
}
