package entities

// ProjectPath identifies one Terraform root module inside a repository.
// The JSON field names are the exact casing the Atlantis API expects and
// must not be changed.
type ProjectPath struct {
	Directory string `json:"Directory"`
	Workspace string `json:"Workspace"`
}

// RunInput is the payload for the Atlantis plan and apply endpoints.
// PR is optional; zero means "no pull request attached".
type RunInput struct {
	Repository string
	Ref        string
	Type       string // VCS provider type, e.g. "Github", "Gitlab"
	Paths      []ProjectPath
	PR         int
}
