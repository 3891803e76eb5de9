// Package viz derives the display views of a parsed workflow document:
// the Mermaid dependency graph, the flattened step table, and the
// normalized trigger list. Every function here is a pure transformation
// of its input; nothing is cached or shared between invocations.
package viz

import (
	"fmt"
	"strings"

	"github.com/actionlens/actionlens/pkg/workflow"
)

// BuildDependencyGraph emits a Mermaid top-down flowchart of the job
// dependency graph. Each job contributes, in document order, either one
// edge line per entry of its needs list ("  dep --> job") or a single
// standalone node line ("  job") when it has no entries, whether the
// needs key was absent or an empty list. A standalone line is skipped
// when the job's name already appears as someone else's dependency: the
// edge introduces its node, and every job name still appears in the
// output at least once.
//
// The second return value is false when the document is nil or defines
// no jobs; the empty string it accompanies is not a valid graph and
// callers must present it as "nothing to visualize".
//
// Repeated or self-referential needs entries pass through as-is, and
// dependency names are not checked against the job set. The rendering
// collaborator consuming this text is responsible for undefined node
// references.
func BuildDependencyGraph(doc *workflow.Document) (string, bool) {
	if !doc.HasJobs() {
		return "", false
	}

	referenced := make(map[string]bool)
	for _, job := range doc.Jobs {
		if job.Needs == nil {
			continue
		}
		for _, dep := range job.Needs.Names {
			referenced[dep] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, job := range doc.Jobs {
		if job.Needs != nil && len(job.Needs.Names) > 0 {
			for _, dep := range job.Needs.Names {
				fmt.Fprintf(&sb, "  %s --> %s\n", dep, job.Name)
			}
		} else if !referenced[job.Name] {
			fmt.Fprintf(&sb, "  %s\n", job.Name)
		}
	}

	return sb.String(), true
}
