package viz

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// DetailKind discriminates the renderable shapes a trigger detail can
// format into.
type DetailKind int

const (
	// DetailList is a list of labeled items
	DetailList DetailKind = iota
	// DetailRaw is a YAML dump of an unrecognized payload
	DetailRaw
)

// DetailItem is one labeled entry of a list-shaped detail view.
type DetailItem struct {
	Label string
	Value string
}

// DetailView is the renderable form of one trigger's filter detail.
type DetailView struct {
	Kind  DetailKind
	Items []DetailItem
	Raw   string
}

// detailFormatter renders one event's structured payload, or returns nil
// when it has nothing to show for it.
type detailFormatter func(*yaml.Node) *DetailView

// detailFormatters maps event names with a known filter schema to their
// formatter. Everything else takes the generic dump path, which is the
// explicit default strategy rather than an implicit else branch.
var detailFormatters = map[string]detailFormatter{
	"push":          formatFilterDetail,
	"pull_request":  formatFilterDetail,
	"issue_comment": formatTypesDetail,
	"release":       formatTypesDetail,
	"schedule":      formatScheduleDetail,
}

// FormatTriggerDetail renders one trigger's detail payload into a known
// shape. A nil or scalar payload produces no output. Recognized events
// get their schema-aware list rendering; any other event, and any
// recognized event whose payload does not have the expected shape, falls
// back to a generic YAML dump of the whole payload so no information is
// silently dropped. The function is total: it never errors, whatever the
// payload's nesting or malformation.
func FormatTriggerDetail(event string, detail *yaml.Node) *DetailView {
	if detail == nil || (detail.Kind != yaml.MappingNode && detail.Kind != yaml.SequenceNode) {
		return nil
	}

	if format, ok := detailFormatters[event]; ok {
		return format(detail)
	}

	return genericDump(detail)
}

// formatFilterDetail handles the two branch-and-path-filtered events.
// Each recognized field present in the payload becomes one labeled item
// with its values joined by ", "; absent fields are omitted entirely. A
// payload carrying none of the recognized fields produces no output; a
// payload that is not a mapping at all takes the generic dump.
func formatFilterDetail(detail *yaml.Node) *DetailView {
	if detail.Kind != yaml.MappingNode {
		return genericDump(detail)
	}

	var items []DetailItem
	for _, field := range []string{"branches", "paths", "types"} {
		if value := mappingValue(detail, field); value != nil {
			items = append(items, DetailItem{Label: field, Value: joinValues(value)})
		}
	}

	if len(items) == 0 {
		return nil
	}
	return &DetailView{Kind: DetailList, Items: items}
}

// formatTypesDetail handles comment- and release-like events, which only
// carry an activity-type filter.
func formatTypesDetail(detail *yaml.Node) *DetailView {
	if detail.Kind != yaml.MappingNode {
		return genericDump(detail)
	}

	value := mappingValue(detail, "types")
	if value == nil {
		return nil
	}

	return &DetailView{Kind: DetailList, Items: []DetailItem{
		{Label: "types", Value: joinValues(value)},
	}}
}

// formatScheduleDetail renders one item per schedule entry showing its
// cron expression. An entry without a cron field still renders, with an
// empty value after the label; this mirrors the historical behavior of
// the feature and is intentional.
func formatScheduleDetail(detail *yaml.Node) *DetailView {
	if detail.Kind != yaml.SequenceNode {
		return genericDump(detail)
	}

	items := make([]DetailItem, 0, len(detail.Content))
	for _, entry := range detail.Content {
		item := DetailItem{Label: "cron"}
		if cron := mappingValue(entry, "cron"); cron != nil && cron.Kind == yaml.ScalarNode {
			item.Value = cron.Value
		}
		items = append(items, item)
	}

	return &DetailView{Kind: DetailList, Items: items}
}

// genericDump re-serializes the payload as YAML, preserving key order
// and nesting. This is the guaranteed-total fallback for unrecognized
// trigger schemas.
func genericDump(detail *yaml.Node) *DetailView {
	data, err := yaml.Marshal(detail)
	if err != nil {
		return &DetailView{Kind: DetailRaw, Raw: ""}
	}
	return &DetailView{Kind: DetailRaw, Raw: strings.TrimRight(string(data), "\n")}
}

// mappingValue returns the value node for a key of a mapping node, nil
// when the node is not a mapping or the key is absent.
func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// joinValues renders a field value for list display: sequence elements
// joined by ", " in order, a scalar as itself.
func joinValues(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		parts := make([]string, 0, len(n.Content))
		for _, item := range n.Content {
			parts = append(parts, item.Value)
		}
		return strings.Join(parts, ", ")
	case yaml.ScalarNode:
		return n.Value
	default:
		return ""
	}
}
