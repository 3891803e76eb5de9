package actionlens

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actionlens/actionlens/pkg/viz"
)

// newShowCmd creates the command printing all three derived views at
// once.
func newShowCmd() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print graph, steps, and triggers for a workflow",
		Long: `Parse a workflow once and print all three derived views: the Mermaid
dependency graph, the step table, and the trigger table.

Examples:
  actionlens show -f .github/workflows/ci.yml
  actionlens show --repo acme/pipelines --workflow ci.yml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, source, err := src.loadDocument(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			name := doc.Name
			if name == "" {
				name = source
			}
			fmt.Fprintf(out, "Workflow: %s\n\n", name)

			fmt.Fprintln(out, "DEPENDENCY GRAPH")
			if text, ok := viz.BuildDependencyGraph(doc); ok {
				fmt.Fprint(out, text)
			} else {
				fmt.Fprintln(out, "  (no jobs)")
			}

			fmt.Fprintln(out, "\nSTEPS")
			if jobs := viz.ExtractJobSteps(doc); len(jobs) > 0 {
				writeStepsTable(out, jobs)
			} else {
				fmt.Fprintln(out, "  (no jobs)")
			}

			fmt.Fprintln(out, "\nTRIGGERS")
			if triggers := viz.ExtractTriggers(doc); len(triggers) > 0 {
				writeTriggers(out, triggers)
			} else {
				fmt.Fprintln(out, "  (none)")
			}

			return nil
		},
	}

	src.register(cmd)

	return cmd
}
