package actionlens

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/actionlens/actionlens/pkg/errors"
	"github.com/actionlens/actionlens/pkg/render"
	"github.com/actionlens/actionlens/pkg/viz"
)

// newGraphCmd creates the command printing the Mermaid dependency graph.
func newGraphCmd() *cobra.Command {
	var src sourceFlags
	var renderSVG bool
	var outputPath string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the job dependency graph",
		Long: `Derive the Mermaid dependency graph of the workflow's jobs.

Each job that declares needs contributes one edge per dependency; jobs
without dependencies appear as standalone nodes. The output is plain
Mermaid text suitable for any Mermaid renderer.

Examples:
  # Print the graph text
  actionlens graph -f .github/workflows/ci.yml

  # Render to SVG via the configured mermaid binary
  actionlens graph -f ci.yml --svg -o pipeline.svg

  # Fetch the workflow from GitHub first
  actionlens graph --repo acme/pipelines --workflow ci.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := src.loadDocument(cmd.Context())
			if err != nil {
				return err
			}

			text, ok := viz.BuildDependencyGraph(doc)
			if !ok {
				if renderSVG {
					// The user asked for an artifact and there is
					// nothing to put in it.
					return fmt.Errorf("cannot export an SVG: %w", apperrors.ErrNoJobs)
				}
				// Expected outcome for a workflow without jobs, not an error.
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to visualize: the workflow defines no jobs.")
				return nil
			}

			if jsonOutput {
				out, err := json.MarshalIndent(map[string]string{"graph": text}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), text)
			}

			if renderSVG {
				renderer := render.NewMermaidCLI(clientConfig.MermaidBinary)
				artifact, err := renderer.Render(cmd.Context(), text)
				if err != nil {
					if apperrors.IsRenderError(err) {
						return fmt.Errorf("rendering failed (is %s installed?): %w",
							clientConfig.MermaidBinary, err)
					}
					return err
				}

				written, err := render.Export(artifact, outputPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "exported %s\n", written)
			}

			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().BoolVar(&renderSVG, "svg", false,
		"Render the graph and export an SVG artifact")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Export path for the SVG artifact (generated name when empty)")

	return cmd
}
