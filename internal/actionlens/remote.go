package actionlens

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actionlens/actionlens/pkg/github"
)

// newRemoteCmd groups operations against a hosted repository.
func newRemoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Work with workflows hosted on GitHub",
	}

	cmd.AddCommand(newRemoteListCmd())

	return cmd
}

// newRemoteListCmd creates the command listing candidate workflow files
// in a repository.
func newRemoteListCmd() *cobra.Command {
	var repo string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflow files in a repository",
		Long: `List the workflow definition files under the repository's
.github/workflows directory.

Examples:
  actionlens remote list --repo acme/pipelines
  actionlens remote list --repo acme/pipelines --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if repo == "" {
				repo = clientConfig.DefaultRepo
			}
			if repo == "" {
				return fmt.Errorf("no repository: pass --repo owner/name or set default_repo in the config file")
			}

			owner, name, err := splitRepo(repo)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
			defer cancel()

			client := github.NewClient(clientConfig.GitHubAPIURL, clientConfig.GitHubToken)
			names, err := client.ListWorkflowFiles(ctx, owner, name)
			if err != nil {
				return describeRemoteError(err)
			}

			if jsonOutput {
				data, err := json.MarshalIndent(names, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workflow files found")
				return nil
			}

			for _, file := range names {
				fmt.Fprintln(cmd.OutOrStdout(), file)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&repo, "repo", "", "Repository in owner/name form")

	return cmd
}
