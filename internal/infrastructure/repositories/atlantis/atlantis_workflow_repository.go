package atlantis

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	cleanhttp "github.com/hashicorp/go-cleanhttp"

	"github.com/rios0rios0/terraforge/config"
	"github.com/rios0rios0/terraforge/internal/domain/entities"
	"github.com/rios0rios0/terraforge/internal/domain/repositories"
)

const (
	tokenHeader = "X-Atlantis-Token"
	contentType = "application/json"
)

// AtlantisWorkflowRepository implements repositories.WorkflowRepository
// against the Atlantis REST API (https://www.runatlantis.io/docs/api.html).
type AtlantisWorkflowRepository struct {
	baseURL    string
	token      string
	username   string
	password   string
	httpClient *http.Client
}

// runPayload is the request body for the plan and apply endpoints. The
// field casing is what the server expects and must be preserved exactly.
type runPayload struct {
	Repository string                 `json:"Repository"`
	Ref        string                 `json:"Ref"`
	Type       string                 `json:"Type"`
	Paths      []entities.ProjectPath `json:"Paths"`
	PR         int                    `json:"PR,omitempty"`
}

// NewAtlantisWorkflowRepository creates a workflow repository for the given
// server settings. It fails when the URL is missing or the authentication
// settings are not exactly one of token or username/password.
func NewAtlantisWorkflowRepository(cfg config.AtlantisConfig) (repositories.WorkflowRepository, error) {
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

	return &AtlantisWorkflowRepository{
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		token:    cfg.Token,
		username: cfg.Username,
		password: cfg.Password,
		httpClient: &http.Client{
			Timeout:   time.Duration(timeout) * time.Second,
			Transport: transport,
		},
	}, nil
}

// ListProjects returns all projects configured on the server.
func (r *AtlantisWorkflowRepository) ListProjects(ctx context.Context) ([]map[string]any, error) {
	resp, err := r.doRequest(ctx, http.MethodGet, "/api/projects", nil, nil)
	if err != nil {
		return nil, err
	}
	return listField(resp, "projects"), nil
}

// GetProject returns a single project. Project and branch are optional.
func (r *AtlantisWorkflowRepository) GetProject(
	ctx context.Context,
	repo, project, branch string,
) (map[string]any, error) {
	params := url.Values{}
	params.Set("repo", repo)
	if project != "" {
		params.Set("project", project)
	}
	if branch != "" {
		params.Set("branch", branch)
	}

	return r.doRequest(ctx, http.MethodGet, "/api/project", params, nil)
}

// GetProjectStatus returns the lock/plan/apply status of a project.
func (r *AtlantisWorkflowRepository) GetProjectStatus(
	ctx context.Context,
	repo, project, branch string,
) (map[string]any, error) {
	params := url.Values{}
	params.Set("repo", repo)
	if project != "" {
		params.Set("project", project)
	}
	if branch != "" {
		params.Set("branch", branch)
	}

	return r.doRequest(ctx, http.MethodGet, "/api/project/status", params, nil)
}

// ListLocks returns all locks, or only the locks of one repository when a
// filter is given. The filtering happens server-side.
func (r *AtlantisWorkflowRepository) ListLocks(ctx context.Context, repo string) ([]map[string]any, error) {
	params := url.Values{}
	if repo != "" {
		params.Set("repo", repo)
	}

	resp, err := r.doRequest(ctx, http.MethodGet, "/api/locks", params, nil)
	if err != nil {
		return nil, err
	}
	return listField(resp, "locks"), nil
}

// DeleteLock deletes a lock by ID. Repo and project are optional.
func (r *AtlantisWorkflowRepository) DeleteLock(
	ctx context.Context,
	lockID, repo, project string,
) (map[string]any, error) {
	params := url.Values{}
	params.Set("id", lockID)
	if repo != "" {
		params.Set("repo", repo)
	}
	if project != "" {
		params.Set("project", project)
	}

	return r.doRequest(ctx, http.MethodDelete, "/api/locks", params, nil)
}

// ListEvents returns recent server events. Zero limit means no limit.
func (r *AtlantisWorkflowRepository) ListEvents(ctx context.Context, limit int) ([]map[string]any, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	resp, err := r.doRequest(ctx, http.MethodGet, "/api/events", params, nil)
	if err != nil {
		return nil, err
	}
	return listField(resp, "events"), nil
}

// GetVersion returns the server version information.
func (r *AtlantisWorkflowRepository) GetVersion(ctx context.Context) (map[string]any, error) {
	return r.doRequest(ctx, http.MethodGet, "/api/version", nil, nil)
}

// GetHealth returns the server health status.
func (r *AtlantisWorkflowRepository) GetHealth(ctx context.Context) (map[string]any, error) {
	return r.doRequest(ctx, http.MethodGet, "/api/health", nil, nil)
}

// Plan triggers a Terraform plan run.
func (r *AtlantisWorkflowRepository) Plan(ctx context.Context, input entities.RunInput) (map[string]any, error) {
	return r.doRequest(ctx, http.MethodPost, "/api/plan", nil, newRunPayload(input))
}

// Apply triggers a Terraform apply run.
func (r *AtlantisWorkflowRepository) Apply(ctx context.Context, input entities.RunInput) (map[string]any, error) {
	return r.doRequest(ctx, http.MethodPost, "/api/apply", nil, newRunPayload(input))
}

func newRunPayload(input entities.RunInput) *runPayload {
	return &runPayload{
		Repository: input.Repository,
		Ref:        input.Ref,
		Type:       input.Type,
		Paths:      input.Paths,
		PR:         input.PR,
	}
}

// doRequest sends one request to the server and parses the JSON response.
// A 204 status or an empty body yields an empty map.
func (r *AtlantisWorkflowRepository) doRequest(
	ctx context.Context,
	method, endpoint string,
	params url.Values,
	body any,
) (map[string]any, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	fullURL := r.baseURL + endpoint
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Token auth sets both the Atlantis header and a bearer token; basic
	// auth replaces them entirely. Never both.
	if r.token != "" {
		req.Header.Set(tokenHeader, r.token)
		req.Header.Set("Authorization", "Bearer "+r.token)
	} else {
		req.SetBasicAuth(r.username, r.password)
	}
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("atlantis API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return map[string]any{}, nil
	}

	var parsed map[string]any
	if unmarshalErr := json.Unmarshal(respBody, &parsed); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse response: %w", unmarshalErr)
	}

	return parsed, nil
}

// listField extracts an array field of objects from a response body.
// A missing or differently typed field yields an empty list.
func listField(resp map[string]any, key string) []map[string]any {
	raw, ok := resp[key].([]any)
	if !ok {
		return []map[string]any{}
	}

	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		if entry, isMap := item.(map[string]any); isMap {
			out = append(out, entry)
		}
	}
	return out
}
