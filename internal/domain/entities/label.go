package entities

// Label is a minimal view of a repository label.
type Label struct {
	ID          int64
	Name        string
	Color       string
	Description string
}

// LabelInput holds the fields to create a label.
type LabelInput struct {
	Name        string
	Color       string
	Description string
}
