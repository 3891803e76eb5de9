// Package github implements the remote-fetch collaborator: listing and
// retrieving workflow definition files from a repository through the
// GitHub REST contents API. Failures are classified at this boundary
// into the three classes the CLI surfaces distinctly: not-found,
// authentication, and generic transport.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/actionlens/actionlens/pkg/errors"
	"github.com/actionlens/actionlens/pkg/log"
)

// WorkflowsPath is the fixed repository path holding workflow
// definitions.
const WorkflowsPath = ".github/workflows"

const defaultTimeout = 30 * time.Second

// Client talks to the GitHub REST API. The zero token is valid and
// means unauthenticated access to public repositories.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL. Pass an empty
// token for unauthenticated access.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// contentEntry is the subset of the contents API listing response the
// client needs.
type contentEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ListWorkflowFiles returns the names of candidate workflow definition
// files (.yml/.yaml) under the repository's workflows directory, in API
// order.
func (c *Client) ListWorkflowFiles(ctx context.Context, owner, repo string) ([]string, error) {
	repoID := owner + "/" + repo
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, owner, repo, WorkflowsPath)

	body, err := c.get(ctx, url, "application/vnd.github+json", repoID, "", "list")
	if err != nil {
		return nil, err
	}

	var entries []contentEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, apperrors.WrapFetchError(repoID, "", "list",
			fmt.Errorf("%w: unexpected listing response: %v", apperrors.ErrTransport, err))
	}

	var names []string
	for _, entry := range entries {
		if entry.Type != "file" {
			continue
		}
		if strings.HasSuffix(entry.Name, ".yml") || strings.HasSuffix(entry.Name, ".yaml") {
			names = append(names, entry.Name)
		}
	}

	log.WithModule("github").Debug("listed workflow files", "repo", repoID, "count", len(names))

	return names, nil
}

// GetWorkflowFile retrieves the raw text content of one named workflow
// file.
func (c *Client) GetWorkflowFile(ctx context.Context, owner, repo, name string) ([]byte, error) {
	repoID := owner + "/" + repo
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s/%s", c.baseURL, owner, repo, WorkflowsPath, name)

	return c.get(ctx, url, "application/vnd.github.raw+json", repoID, name, "get")
}

// get performs one API request and maps the response status onto the
// error taxonomy. No retries: the caller decides what failure means.
func (c *Client) get(ctx context.Context, url, accept, repoID, resource, operation string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.WrapFetchError(repoID, resource, operation,
			fmt.Errorf("%w: %v", apperrors.ErrTransport, err))
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.WrapFetchError(repoID, resource, operation,
			fmt.Errorf("%w: %v", apperrors.ErrTransport, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if err := classifyStatus(resp.StatusCode, resource); err != nil {
		return nil, apperrors.WrapFetchError(repoID, resource, operation, err)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.WrapFetchError(repoID, resource, operation,
			fmt.Errorf("%w: reading response: %v", apperrors.ErrTransport, err))
	}

	return body, nil
}

// classifyStatus maps an HTTP status onto the failure taxonomy: 404 is
// not-found (the repository when listing, the file when fetching one),
// 401/403 are authentication failures, any other non-2xx status is a
// transport-class failure.
func classifyStatus(status int, resource string) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusNotFound:
		if resource != "" {
			return apperrors.ErrWorkflowNotFound
		}
		return apperrors.ErrRepoNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperrors.ErrAuthFailed
	default:
		return fmt.Errorf("%w: unexpected status %d", apperrors.ErrTransport, status)
	}
}
