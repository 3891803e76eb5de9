package actionlens

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actionlens/actionlens/pkg/viz"
)

// stepJSON mirrors one step for JSON output; absent fields stay absent
// instead of becoming empty strings.
type stepJSON struct {
	Name *string `json:"name,omitempty"`
	Uses *string `json:"uses,omitempty"`
	Run  *string `json:"run,omitempty"`
}

type jobStepsJSON struct {
	Job   string     `json:"job"`
	Steps []stepJSON `json:"steps"`
}

// newStepsCmd creates the command printing the flattened step table.
func newStepsCmd() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Print the per-job step table",
		Long: `Flatten every job's step list into one table.

Jobs without steps still appear, with a "(no steps)" row, so the table
always covers the whole workflow.

Examples:
  # Readable table
  actionlens steps -f .github/workflows/ci.yml

  # JSON for further processing
  actionlens steps -f ci.yml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := src.loadDocument(cmd.Context())
			if err != nil {
				return err
			}

			jobs := viz.ExtractJobSteps(doc)

			if jsonOutput {
				return printStepsJSON(cmd, jobs)
			}

			if len(jobs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No jobs found")
				return nil
			}

			writeStepsTable(cmd.OutOrStdout(), jobs)
			return nil
		},
	}

	src.register(cmd)

	return cmd
}

func printStepsJSON(cmd *cobra.Command, jobs []viz.JobSteps) error {
	out := make([]jobStepsJSON, 0, len(jobs))
	for _, job := range jobs {
		steps := make([]stepJSON, 0, len(job.Steps))
		for _, step := range job.Steps {
			steps = append(steps, stepJSON{Name: step.Name, Uses: step.Uses, Run: step.Run})
		}
		out = append(out, jobStepsJSON{Job: job.JobName, Steps: steps})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
