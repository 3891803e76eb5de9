package viz

import (
	"github.com/actionlens/actionlens/pkg/workflow"
)

// JobSteps is one row group of the step table: a job name and its steps
// in declaration order.
type JobSteps struct {
	JobName string
	Steps   []workflow.Step
}

// ExtractJobSteps flattens each job's step list into a table-friendly
// sequence. Every job appears exactly once in document order; a job
// without steps contributes an empty list rather than being omitted, so
// table UIs can render "no steps" for it. Step fields are copied
// verbatim, absence included; display substitutions happen at the
// presentation layer.
func ExtractJobSteps(doc *workflow.Document) []JobSteps {
	if doc == nil || len(doc.Jobs) == 0 {
		return nil
	}

	out := make([]JobSteps, 0, len(doc.Jobs))
	for _, job := range doc.Jobs {
		steps := job.Steps
		if steps == nil {
			steps = []workflow.Step{}
		}
		out = append(out, JobSteps{JobName: job.Name, Steps: steps})
	}

	return out
}
