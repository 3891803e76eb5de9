package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/actionlens/actionlens/pkg/errors"
)

func TestListWorkflowFiles(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "ci.yml", "type": "file"},
			{"name": "release.yaml", "type": "file"},
			{"name": "README.md", "type": "file"},
			{"name": "scripts", "type": "dir"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	names, err := client.ListWorkflowFiles(context.Background(), "acme", "pipelines")
	require.NoError(t, err)

	assert.Equal(t, []string{"ci.yml", "release.yaml"}, names)
	assert.Equal(t, "/repos/acme/pipelines/contents/.github/workflows", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestListWorkflowFiles_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.ListWorkflowFiles(context.Background(), "acme", "pipelines")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestGetWorkflowFile(t *testing.T) {
	const content = "on: push\njobs:\n  build: {}\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/pipelines/contents/.github/workflows/ci.yml", r.URL.Path)
		assert.Equal(t, "application/vnd.github.raw+json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(content))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	body, err := client.GetWorkflowFile(context.Background(), "acme", "pipelines", "ci.yml")
	require.NoError(t, err)
	assert.Equal(t, content, string(body))
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		check    func(error) bool
		sentinel error
	}{
		{"list 404 is repo not found", http.StatusNotFound, apperrors.IsNotFoundError, apperrors.ErrRepoNotFound},
		{"401 is auth failure", http.StatusUnauthorized, apperrors.IsAuthError, apperrors.ErrAuthFailed},
		{"403 is auth failure", http.StatusForbidden, apperrors.IsAuthError, apperrors.ErrAuthFailed},
		{"500 is transport failure", http.StatusInternalServerError, apperrors.IsTransportError, apperrors.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, "")
			_, err := client.ListWorkflowFiles(context.Background(), "acme", "missing")
			require.Error(t, err)
			assert.True(t, tt.check(err), "classification failed for %v", err)
			assert.ErrorIs(t, err, tt.sentinel)
		})
	}
}

func TestGetWorkflowFile_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.GetWorkflowFile(context.Background(), "acme", "pipelines", "gone.yml")
	require.Error(t, err)
	// A missing file classifies as workflow-not-found, not repo-not-found
	assert.ErrorIs(t, err, apperrors.ErrWorkflowNotFound)

	resource, ok := apperrors.GetResource(err)
	require.True(t, ok)
	assert.Equal(t, "gone.yml", resource)
}

func TestListWorkflowFiles_MalformedListing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.ListWorkflowFiles(context.Background(), "acme", "pipelines")
	require.Error(t, err)
	assert.True(t, apperrors.IsTransportError(err))
}

func TestClient_TransportFailure(t *testing.T) {
	// Point at a server that is no longer there.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, "")
	_, err := client.ListWorkflowFiles(context.Background(), "acme", "pipelines")
	require.Error(t, err)
	assert.True(t, apperrors.IsTransportError(err))
}
