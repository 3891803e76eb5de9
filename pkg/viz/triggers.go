package viz

import (
	"github.com/actionlens/actionlens/pkg/workflow"
)

// ExtractTriggers returns the workflow's normalized trigger records in
// specification order. The union-shape handling (bare string, sequence,
// mapping with per-event detail) happens when the document is decoded;
// this view simply exposes it. An absent trigger specification yields an
// empty sequence, not an error.
func ExtractTriggers(doc *workflow.Document) []workflow.Trigger {
	if doc == nil {
		return nil
	}
	return doc.On.Triggers
}
