package actionlens

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actionlens/actionlens/pkg/viz"
	"github.com/actionlens/actionlens/pkg/workflow"
)

// triggerJSON mirrors one normalized trigger for JSON output. Detail is
// the structured payload decoded into plain values; Text is a scalar
// annotation. At most one of the two is set.
type triggerJSON struct {
	Event  string `json:"event"`
	Detail any    `json:"detail,omitempty"`
	Text   string `json:"text,omitempty"`
}

// newTriggersCmd creates the command printing the normalized trigger
// table.
func newTriggersCmd() *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   "triggers",
		Short: "Print the workflow's trigger conditions",
		Long: `Normalize the workflow's trigger specification into a uniform list.

The on field accepts a single event name, a list of names, or a mapping
of event to filter detail; all three shapes flatten into the same table.
Known filter schemas (push/pull_request branch and path filters,
issue_comment/release activity types, schedule cron entries) render as
labeled lists; anything else is dumped verbatim so nothing is lost.

Examples:
  actionlens triggers -f .github/workflows/ci.yml
  actionlens triggers -f ci.yml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, _, err := src.loadDocument(cmd.Context())
			if err != nil {
				return err
			}

			triggers := viz.ExtractTriggers(doc)

			if jsonOutput {
				return printTriggersJSON(cmd, triggers)
			}

			if len(triggers) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No triggers found")
				return nil
			}

			writeTriggers(cmd.OutOrStdout(), triggers)
			return nil
		},
	}

	src.register(cmd)

	return cmd
}

func printTriggersJSON(cmd *cobra.Command, triggers []workflow.Trigger) error {
	out := make([]triggerJSON, 0, len(triggers))
	for _, trigger := range triggers {
		entry := triggerJSON{Event: trigger.Event, Text: trigger.Text}
		if trigger.Detail != nil {
			var detail any
			if err := trigger.Detail.Decode(&detail); err == nil {
				entry.Detail = detail
			}
		}
		out = append(out, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
