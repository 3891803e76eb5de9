package workflow

import (
	"gopkg.in/yaml.v3"

	apperrors "github.com/actionlens/actionlens/pkg/errors"
)

// Parse decodes raw workflow text into a Document. This is the only hard
// failure point of the whole pipeline: text that yaml cannot parse at all
// returns an error wrapping ErrParseFailed; any structurally valid
// document, however incomplete, decodes without error. The source string
// is only used to label error messages.
func Parse(data []byte, source string) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.WrapParseError(source, err)
	}
	return &doc, nil
}

// UnmarshalYAML decodes the document root. A root that is not a mapping
// (a bare scalar or a sequence) yields an empty document rather than an
// error, matching the permissive input contract.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	value = resolveAlias(value)
	if value.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key := resolveAlias(value.Content[i])
		val := resolveAlias(value.Content[i+1])

		switch scalarValue(key) {
		case "name":
			d.Name = scalarValue(val)
		case "on":
			if err := d.On.UnmarshalYAML(val); err != nil {
				return err
			}
		case "jobs":
			d.Jobs = decodeJobs(val)
		}
	}

	return nil
}

// decodeJobs walks the jobs mapping in document order. A jobs value of
// any other shape contributes no jobs.
func decodeJobs(value *yaml.Node) []Job {
	if value == nil || value.Kind != yaml.MappingNode {
		return nil
	}

	jobs := make([]Job, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := resolveAlias(value.Content[i])
		val := resolveAlias(value.Content[i+1])
		jobs = append(jobs, decodeJob(scalarValue(key), val))
	}

	return jobs
}

// decodeJob decodes one job definition. A null or empty-string needs
// value counts as "no needs declared", the same way a missing key does;
// an explicit empty sequence stays present-but-empty.
func decodeJob(name string, value *yaml.Node) Job {
	job := Job{Name: name}

	if value == nil || value.Kind != yaml.MappingNode {
		return job
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key := resolveAlias(value.Content[i])
		val := resolveAlias(value.Content[i+1])

		switch scalarValue(key) {
		case "needs":
			if isNullNode(val) || (val.Kind == yaml.ScalarNode && val.Value == "") {
				continue
			}
			var needs NeedsList
			_ = needs.UnmarshalYAML(val)
			job.Needs = &needs
		case "steps":
			job.Steps = decodeSteps(val)
		}
	}

	return job
}

// decodeSteps decodes a job's step sequence. A steps value that is not a
// sequence yields an empty list, so the job still appears in the step
// table with zero steps. Sequence entries that are not mappings decode
// as steps with no fields at all.
func decodeSteps(value *yaml.Node) []Step {
	if value == nil || value.Kind != yaml.SequenceNode {
		return nil
	}

	steps := make([]Step, 0, len(value.Content))
	for _, item := range value.Content {
		steps = append(steps, decodeStep(resolveAlias(item)))
	}

	return steps
}

// decodeStep copies name, uses, and run verbatim. Missing keys stay nil;
// an explicit empty string is preserved as such.
func decodeStep(value *yaml.Node) Step {
	var step Step

	if value == nil || value.Kind != yaml.MappingNode {
		return step
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key := resolveAlias(value.Content[i])
		val := resolveAlias(value.Content[i+1])

		if val.Kind != yaml.ScalarNode || isNullNode(val) {
			continue
		}

		v := val.Value
		switch scalarValue(key) {
		case "name":
			step.Name = &v
		case "uses":
			step.Uses = &v
		case "run":
			step.Run = &v
		}
	}

	return step
}
