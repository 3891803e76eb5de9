package actionlens

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/actionlens/actionlens/pkg/errors"
	"github.com/actionlens/actionlens/pkg/github"
	"github.com/actionlens/actionlens/pkg/workflow"
)

const fetchTimeout = 30 * time.Second

// sourceFlags selects where the workflow document comes from: a local
// file, stdin, or a repository fetch.
type sourceFlags struct {
	file         string
	repo         string
	workflowName string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "",
		"Workflow file to read ('-' for stdin)")
	cmd.Flags().StringVar(&s.repo, "repo", "",
		"Repository in owner/name form to fetch the workflow from")
	cmd.Flags().StringVar(&s.workflowName, "workflow", "",
		"Workflow file name inside the repository's .github/workflows directory")
}

// loadDocument resolves the flags to raw workflow text, parses it, and
// returns the document together with a label describing its source.
// Each call parses fresh: no result of a previous invocation survives a
// parse failure here.
func (s *sourceFlags) loadDocument(ctx context.Context) (*workflow.Document, string, error) {
	data, source, err := s.read(ctx)
	if err != nil {
		return nil, source, err
	}

	doc, err := workflow.Parse(data, source)
	if err != nil {
		if apperrors.IsParseError(err) {
			return nil, source, fmt.Errorf("%s is not valid workflow YAML: %w", source, err)
		}
		return nil, source, err
	}

	return doc, source, nil
}

func (s *sourceFlags) read(ctx context.Context) ([]byte, string, error) {
	if s.file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "stdin", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, "stdin", nil
	}

	if s.file != "" {
		data, err := os.ReadFile(s.file)
		if err != nil {
			return nil, s.file, fmt.Errorf("failed to read workflow file: %w", err)
		}
		return data, s.file, nil
	}

	repo := s.repo
	if repo == "" {
		repo = clientConfig.DefaultRepo
	}
	if repo == "" || s.workflowName == "" {
		return nil, "", fmt.Errorf("no workflow source: pass -f <file> or --repo owner/name --workflow <name>")
	}

	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, repo, err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	client := github.NewClient(clientConfig.GitHubAPIURL, clientConfig.GitHubToken)
	data, err := client.GetWorkflowFile(fetchCtx, owner, name, s.workflowName)
	if err != nil {
		return nil, repo + "/" + s.workflowName, describeRemoteError(err)
	}

	return data, repo + "/" + s.workflowName, nil
}

// splitRepo splits an owner/name repository identifier.
func splitRepo(repo string) (string, string, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repository %q: expected owner/name", repo)
	}
	return owner, name, nil
}

// describeRemoteError turns a classified fetch failure into the distinct
// user-facing message its class calls for.
func describeRemoteError(err error) error {
	switch {
	case apperrors.IsNotFoundError(err):
		if resource, ok := apperrors.GetResource(err); ok {
			return fmt.Errorf("%s not found on GitHub (check --repo and --workflow): %w", resource, err)
		}
		return fmt.Errorf("not found on GitHub (check --repo and --workflow): %w", err)
	case apperrors.IsAuthError(err):
		if repo, ok := apperrors.GetRepo(err); ok {
			return fmt.Errorf("GitHub rejected the credentials for %s (set GITHUB_TOKEN or github_token in the config file): %w", repo, err)
		}
		return fmt.Errorf("GitHub rejected the credentials (set GITHUB_TOKEN or github_token in the config file): %w", err)
	case apperrors.IsTransportError(err):
		return fmt.Errorf("could not reach GitHub: %w", err)
	default:
		return err
	}
}
