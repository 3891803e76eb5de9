// Package workflow defines the parsed representation of a GitHub Actions
// workflow file and the YAML decoding that produces it.
//
// The document is deliberately permissive: missing fields are valid, not
// errors. Only raw text that yaml cannot parse at all is rejected. Mapping
// order from the source file is preserved, because every derived view
// (graph, step table, trigger table) presents entries in document order.
// Example YAML:
//
//	name: CI
//	on:
//	  push:
//	    branches: [main]
//	jobs:
//	  build:
//	    steps:
//	      - uses: actions/checkout@v4
//	      - run: make build
//	  test:
//	    needs: build
package workflow

import (
	"gopkg.in/yaml.v3"
)

// Document is the root parsed structure of one workflow file.
// It lives only for the duration of a single visualize request; a new
// parse fully replaces it.
type Document struct {
	// Name is the optional workflow display name
	Name string
	// On is the trigger specification, normalized from its union shape
	On TriggerSpec
	// Jobs lists job definitions in document order
	Jobs []Job
}

// HasJobs reports whether the document defines at least one job.
// No jobs means no graph is producible.
func (d *Document) HasJobs() bool {
	return d != nil && len(d.Jobs) > 0
}

// Job is one entry of the jobs mapping.
type Job struct {
	// Name is the mapping key, unique by construction
	Name string
	// Needs is nil when the job declared no needs key at all. A present
	// but empty list is kept distinct for callers, though it contributes
	// no edges and the graph treats the job like one without needs.
	Needs *NeedsList
	// Steps lists the job's steps in order; empty when absent or not a
	// sequence
	Steps []Step
}

// NeedsList is the scalar-or-sequence union of a job's needs field,
// normalized to a slice. Duplicates and self-references pass through
// unvalidated.
type NeedsList struct {
	Names []string
}

// UnmarshalYAML accepts either a single dependency name or a sequence of
// names. Non-scalar sequence elements contribute their (empty) scalar
// form rather than failing the decode.
func (n *NeedsList) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)

	switch value.Kind {
	case yaml.ScalarNode:
		if !isNullNode(value) {
			n.Names = []string{value.Value}
		} else {
			n.Names = []string{}
		}
	case yaml.SequenceNode:
		n.Names = make([]string, 0, len(value.Content))
		for _, item := range value.Content {
			item = resolveAlias(item)
			n.Names = append(n.Names, scalarValue(item))
		}
	default:
		n.Names = []string{}
	}

	return nil
}

// Step is one executable unit within a job. All three fields are
// optional and independent; nothing forces exactly one of Uses/Run.
// Pointer fields keep "absent" distinct from an explicit empty string;
// display fallbacks such as "(unnamed)" belong to the presentation
// layer, not here.
type Step struct {
	Name *string
	Uses *string
	Run  *string
}

// Trigger is one normalized record of the trigger specification.
type Trigger struct {
	// Event is the event name (push, schedule, workflow_dispatch, ...)
	Event string
	// Detail carries a structured filter payload verbatim as it appeared
	// in the source, or nil when the event declared none
	Detail *yaml.Node
	// Text carries a plain scalar annotation when the event's value was a
	// non-empty scalar rather than a structured payload. Kept separate
	// from Detail so consumers can tell "structured payload needing
	// interpretation" from "descriptive text".
	Text string
}

// TriggerSpec is the union-shaped `on` field: absent, a single event
// name, a sequence of event names, or a mapping of event name to filter
// detail. It normalizes to an ordered Trigger slice at decode time.
type TriggerSpec struct {
	Triggers []Trigger
}

// UnmarshalYAML normalizes the four accepted shapes. Sequence elements
// are treated as bare event names regardless of their own type; mapping
// values are classified as no-detail (null or empty string), structured
// detail (mapping or sequence, kept verbatim), or scalar text.
func (t *TriggerSpec) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)

	switch value.Kind {
	case yaml.ScalarNode:
		if !isNullNode(value) && value.Value != "" {
			t.Triggers = []Trigger{{Event: value.Value}}
		}
	case yaml.SequenceNode:
		t.Triggers = make([]Trigger, 0, len(value.Content))
		for _, item := range value.Content {
			item = resolveAlias(item)
			t.Triggers = append(t.Triggers, Trigger{Event: scalarValue(item)})
		}
	case yaml.MappingNode:
		t.Triggers = make([]Trigger, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			key := resolveAlias(value.Content[i])
			val := resolveAlias(value.Content[i+1])
			t.Triggers = append(t.Triggers, classifyTrigger(scalarValue(key), val))
		}
	}

	return nil
}

// classifyTrigger maps one mapping entry of the trigger spec to a
// normalized record.
func classifyTrigger(event string, val *yaml.Node) Trigger {
	trigger := Trigger{Event: event}

	if val == nil || isNullNode(val) {
		return trigger
	}

	switch val.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		trigger.Detail = val
	case yaml.ScalarNode:
		if val.Value != "" {
			trigger.Text = val.Value
		}
	}

	return trigger
}

// scalarValue returns the scalar string form of a node, or "" for
// non-scalar nodes.
func scalarValue(n *yaml.Node) string {
	if n == nil || n.Kind != yaml.ScalarNode || isNullNode(n) {
		return ""
	}
	return n.Value
}

// isNullNode reports whether a node is an explicit YAML null.
func isNullNode(n *yaml.Node) bool {
	return n == nil || n.Tag == "!!null"
}

// resolveAlias follows an alias node to its anchor target.
func resolveAlias(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}
