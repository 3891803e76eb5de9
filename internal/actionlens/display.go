package actionlens

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/actionlens/actionlens/pkg/viz"
	"github.com/actionlens/actionlens/pkg/workflow"
)

// Display-time substitutions live here and nowhere earlier: extraction
// keeps absent fields absent, the table shows placeholders.
const (
	unnamedStep = "(unnamed)"
	emptyCell   = "-"
)

// writeStepsTable renders the step table. Jobs without steps still get
// a row so the reader sees them rather than wondering where they went.
func writeStepsTable(w io.Writer, jobs []viz.JobSteps) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "JOB\t#\tNAME\tUSES\tRUN")

	for _, job := range jobs {
		if len(job.Steps) == 0 {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", job.JobName, emptyCell, "(no steps)", emptyCell, emptyCell)
			continue
		}
		for i, step := range job.Steps {
			_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
				job.JobName,
				i+1,
				displayName(step),
				cell(step.Uses),
				cell(step.Run),
			)
		}
	}
}

// writeTriggers renders the trigger table: one line per event, with its
// formatted detail indented beneath it.
func writeTriggers(w io.Writer, triggers []workflow.Trigger) {
	for _, trigger := range triggers {
		_, _ = fmt.Fprintln(w, trigger.Event)

		if trigger.Text != "" {
			_, _ = fmt.Fprintf(w, "  %s\n", trigger.Text)
		}

		view := viz.FormatTriggerDetail(trigger.Event, trigger.Detail)
		if view == nil {
			continue
		}

		switch view.Kind {
		case viz.DetailList:
			for _, item := range view.Items {
				_, _ = fmt.Fprintf(w, "  %s: %s\n", item.Label, item.Value)
			}
		case viz.DetailRaw:
			for _, line := range strings.Split(view.Raw, "\n") {
				_, _ = fmt.Fprintf(w, "  %s\n", line)
			}
		}
	}
}

// displayName returns the step's display label. A missing or empty name
// shows the placeholder; the underlying data stays untouched.
func displayName(step workflow.Step) string {
	if step.Name == nil || *step.Name == "" {
		return unnamedStep
	}
	return singleLine(*step.Name)
}

// cell renders an optional step field as one table cell.
func cell(value *string) string {
	if value == nil || *value == "" {
		return emptyCell
	}
	return singleLine(*value)
}

// singleLine folds multi-line run commands into one table-safe line.
func singleLine(s string) string {
	s = strings.TrimRight(s, "\n")
	return strings.ReplaceAll(s, "\n", "; ")
}
