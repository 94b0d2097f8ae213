package entities

// Webhook is a minimal view of a repository webhook.
type Webhook struct {
	ID     int64
	URL    string
	Events []string
	Active bool
}

// WebhookInput holds the fields to create a webhook. ContentType defaults
// to "json", Events to the all-events wildcard, and Active to true.
type WebhookInput struct {
	URL         string
	ContentType string
	Secret      string
	Events      []string
	Active      *bool
}
