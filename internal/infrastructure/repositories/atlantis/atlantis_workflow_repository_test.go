//nolint:testpackage // Testing internal implementation details
package atlantis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/terraforge/config"
	"github.com/rios0rios0/terraforge/internal/domain/entities"
)

func newTestRepository(t *testing.T, handler http.HandlerFunc) *AtlantisWorkflowRepository {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	repo, err := NewAtlantisWorkflowRepository(config.AtlantisConfig{
		URL:   server.URL,
		Token: "secret-token",
	})
	require.NoError(t, err)

	concrete, ok := repo.(*AtlantisWorkflowRepository)
	require.True(t, ok)
	return concrete
}

func TestNewAtlantisWorkflowRepository(t *testing.T) {
	t.Parallel()

	t.Run("should return an error when the URL is missing", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.AtlantisConfig{Token: "secret"}

		// when
		repo, err := NewAtlantisWorkflowRepository(cfg)

		// then
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.Contains(t, err.Error(), "atlantis.url is required")
	})

	t.Run("should return an error when no authentication is configured", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.AtlantisConfig{URL: "https://atlantis.example.com"}

		// when
		repo, err := NewAtlantisWorkflowRepository(cfg)

		// then
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("should return an error when both token and basic auth are configured", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.AtlantisConfig{
			URL:      "https://atlantis.example.com",
			Token:    "secret",
			Username: "admin",
			Password: "hunter2",
		}

		// when
		repo, err := NewAtlantisWorkflowRepository(cfg)

		// then
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.Contains(t, err.Error(), "mutually exclusive")
	})

	t.Run("should return an error when only one half of basic auth is configured", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.AtlantisConfig{
			URL:      "https://atlantis.example.com",
			Username: "admin",
		}

		// when
		repo, err := NewAtlantisWorkflowRepository(cfg)

		// then
		require.Error(t, err)
		assert.Nil(t, repo)
		assert.Contains(t, err.Error(), "must be set together")
	})

	t.Run("should strip trailing slashes from the server URL", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := config.AtlantisConfig{
			URL:   "https://atlantis.example.com/",
			Token: "secret",
		}

		// when
		repo, err := NewAtlantisWorkflowRepository(cfg)

		// then
		require.NoError(t, err)
		concrete, ok := repo.(*AtlantisWorkflowRepository)
		require.True(t, ok)
		assert.Equal(t, "https://atlantis.example.com", concrete.baseURL)
	})
}

func TestAtlantisWorkflowRepository_Authentication(t *testing.T) {
	t.Parallel()

	t.Run("should send both the Atlantis header and a bearer token in token mode", func(t *testing.T) {
		t.Parallel()

		// given
		var gotAtlantisToken, gotAuthorization string
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			gotAtlantisToken = r.Header.Get("X-Atlantis-Token")
			gotAuthorization = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"version":"0.27.0"}`))
		})

		// when
		_, err := repo.GetVersion(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, "secret-token", gotAtlantisToken)
		assert.Equal(t, "Bearer secret-token", gotAuthorization)
	})

	t.Run("should send basic auth credentials in basic mode", func(t *testing.T) {
		t.Parallel()

		// given
		var gotUser, gotPass string
		var gotOK bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser, gotPass, gotOK = r.BasicAuth()
			assert.Empty(t, r.Header.Get("X-Atlantis-Token"))
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		t.Cleanup(server.Close)

		repo, err := NewAtlantisWorkflowRepository(config.AtlantisConfig{
			URL:      server.URL,
			Username: "admin",
			Password: "hunter2",
		})
		require.NoError(t, err)

		// when
		_, err = repo.GetHealth(context.Background())

		// then
		require.NoError(t, err)
		assert.True(t, gotOK)
		assert.Equal(t, "admin", gotUser)
		assert.Equal(t, "hunter2", gotPass)
	})
}

func TestAtlantisWorkflowRepository_ListProjects(t *testing.T) {
	t.Parallel()

	t.Run("should unwrap the projects field from the response", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/projects", r.URL.Path)
			_, _ = w.Write([]byte(`{"projects":[{"name":"network"},{"name":"compute"}]}`))
		})

		// when
		projects, err := repo.ListProjects(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "network", projects[0]["name"])
		assert.Equal(t, "compute", projects[1]["name"])
	})

	t.Run("should return an empty list when the field is missing", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		// when
		projects, err := repo.ListProjects(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, projects)
	})
}

func TestAtlantisWorkflowRepository_ListLocks(t *testing.T) {
	t.Parallel()

	t.Run("should pass the repository filter as a query parameter", func(t *testing.T) {
		t.Parallel()

		// given
		var gotRepo string
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/locks", r.URL.Path)
			gotRepo = r.URL.Query().Get("repo")
			_, _ = w.Write([]byte(`{"locks":[{"id":"lock-1"}]}`))
		})

		// when
		locks, err := repo.ListLocks(context.Background(), "octocat/hello-world")

		// then
		require.NoError(t, err)
		assert.Equal(t, "octocat/hello-world", gotRepo)
		require.Len(t, locks, 1)
		assert.Equal(t, "lock-1", locks[0]["id"])
	})

	t.Run("should omit the repository parameter when no filter is given", func(t *testing.T) {
		t.Parallel()

		// given
		var hadRepoParam bool
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			hadRepoParam = r.URL.Query().Has("repo")
			_, _ = w.Write([]byte(`{"locks":[]}`))
		})

		// when
		locks, err := repo.ListLocks(context.Background(), "")

		// then
		require.NoError(t, err)
		assert.False(t, hadRepoParam)
		assert.Empty(t, locks)
	})
}

func TestAtlantisWorkflowRepository_DeleteLock(t *testing.T) {
	t.Parallel()

	t.Run("should send a DELETE request with the lock ID", func(t *testing.T) {
		t.Parallel()

		// given
		var gotMethod, gotID string
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotID = r.URL.Query().Get("id")
			w.WriteHeader(http.StatusNoContent)
		})

		// when
		result, err := repo.DeleteLock(context.Background(), "lock-1", "", "")

		// then
		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "lock-1", gotID)
		assert.Empty(t, result)
	})
}

func TestAtlantisWorkflowRepository_Plan(t *testing.T) {
	t.Parallel()

	t.Run("should send the run payload with the exact field casing the server expects", func(t *testing.T) {
		t.Parallel()

		// given
		var gotBody map[string]any
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/plan", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"status":"queued"}`))
		})
		input := entities.RunInput{
			Repository: "octocat/infra",
			Ref:        "feature/vpc",
			Type:       "Github",
			Paths: []entities.ProjectPath{
				{Directory: ".", Workspace: "default"},
			},
		}

		// when
		result, err := repo.Plan(context.Background(), input)

		// then
		require.NoError(t, err)
		assert.Equal(t, "queued", result["status"])
		assert.Equal(t, "octocat/infra", gotBody["Repository"])
		assert.Equal(t, "feature/vpc", gotBody["Ref"])
		assert.Equal(t, "Github", gotBody["Type"])
		require.Contains(t, gotBody, "Paths")
		paths, ok := gotBody["Paths"].([]any)
		require.True(t, ok)
		require.Len(t, paths, 1)
		first, ok := paths[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, ".", first["Directory"])
		assert.Equal(t, "default", first["Workspace"])
		assert.NotContains(t, gotBody, "PR")
	})

	t.Run("should include the pull request number only when it is set", func(t *testing.T) {
		t.Parallel()

		// given
		var gotBody map[string]any
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_, _ = w.Write([]byte(`{"status":"queued"}`))
		})
		input := entities.RunInput{
			Repository: "octocat/hello-world",
			Ref:        "main",
			Type:       "Github",
			Paths: []entities.ProjectPath{
				{Directory: ".", Workspace: "default"},
			},
			PR: 42,
		}

		// when
		_, err := repo.Plan(context.Background(), input)

		// then
		require.NoError(t, err)
		assert.InDelta(t, float64(42), gotBody["PR"], 0)
	})
}

func TestAtlantisWorkflowRepository_Apply(t *testing.T) {
	t.Parallel()

	t.Run("should post to the apply endpoint", func(t *testing.T) {
		t.Parallel()

		// given
		var gotPath string
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"status":"applying"}`))
		})
		input := entities.RunInput{
			Repository: "octocat/hello-world",
			Ref:        "main",
			Type:       "Github",
			Paths: []entities.ProjectPath{
				{Directory: ".", Workspace: "default"},
			},
		}

		// when
		result, err := repo.Apply(context.Background(), input)

		// then
		require.NoError(t, err)
		assert.Equal(t, "/api/apply", gotPath)
		assert.Equal(t, "applying", result["status"])
	})
}

func TestAtlantisWorkflowRepository_ListEvents(t *testing.T) {
	t.Parallel()

	t.Run("should pass a positive limit and unwrap the events field", func(t *testing.T) {
		t.Parallel()

		// given
		var gotLimit string
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			gotLimit = r.URL.Query().Get("limit")
			_, _ = w.Write([]byte(`{"events":[{"type":"plan"}]}`))
		})

		// when
		events, err := repo.ListEvents(context.Background(), 10)

		// then
		require.NoError(t, err)
		assert.Equal(t, "10", gotLimit)
		require.Len(t, events, 1)
		assert.Equal(t, "plan", events[0]["type"])
	})

	t.Run("should omit the limit parameter when it is zero", func(t *testing.T) {
		t.Parallel()

		// given
		var hadLimit bool
		repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
			hadLimit = r.URL.Query().Has("limit")
			_, _ = w.Write([]byte(`{"events":[]}`))
		})

		// when
		_, err := repo.ListEvents(context.Background(), 0)

		// then
		require.NoError(t, err)
		assert.False(t, hadLimit)
	})
}

func TestAtlantisWorkflowRepository_Responses(t *testing.T) {
	t.Parallel()

	t.Run("should return an empty map for a 204 response", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		// when
		result, err := repo.GetHealth(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("should return an empty map for an empty body", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(_ http.ResponseWriter, _ *http.Request) {})

		// when
		result, err := repo.GetHealth(context.Background())

		// then
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("should return an error with the status code for a failed request", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		})

		// when
		result, err := repo.GetVersion(context.Background())

		// then
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "status 500")
		assert.Contains(t, err.Error(), "boom")
	})

	t.Run("should return an error for a non-JSON body", func(t *testing.T) {
		t.Parallel()

		// given
		repo := newTestRepository(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>not json</html>"))
		})

		// when
		result, err := repo.GetVersion(context.Background())

		// then
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to parse response")
	})
}
