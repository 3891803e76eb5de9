package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actionlens/actionlens/pkg/workflow"
)

func parseDoc(t *testing.T, yamlData string) *workflow.Document {
	t.Helper()
	doc, err := workflow.Parse([]byte(yamlData), "test.yml")
	require.NoError(t, err)
	return doc
}

func TestBuildDependencyGraph_NoJobs(t *testing.T) {
	tests := []struct {
		name     string
		yamlData string
	}{
		{"no jobs key", `name: empty`},
		{"empty jobs mapping", `jobs: {}`},
		{"jobs is a scalar", `jobs: nothing here`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := BuildDependencyGraph(parseDoc(t, tt.yamlData))
			assert.False(t, ok)
			assert.Empty(t, text)
		})
	}

	t.Run("nil document", func(t *testing.T) {
		text, ok := BuildDependencyGraph(nil)
		assert.False(t, ok)
		assert.Empty(t, text)
	})
}

func TestBuildDependencyGraph_TwoJobPipeline(t *testing.T) {
	doc := parseDoc(t, `
jobs:
  build: {}
  test:
    needs: build
`)
	text, ok := BuildDependencyGraph(doc)
	require.True(t, ok)
	// The edge introduces the build node; no redundant standalone line.
	assert.Equal(t, "graph TD\n  build --> test\n", text)
}

func TestBuildDependencyGraph_EdgeDirection(t *testing.T) {
	// The dependency points at the dependent: needs build means an edge
	// from build to test.
	doc := parseDoc(t, `
jobs:
  test:
    needs: build
`)
	text, ok := BuildDependencyGraph(doc)
	require.True(t, ok)
	assert.Equal(t, "graph TD\n  build --> test\n", text)
}

func TestBuildDependencyGraph_IndependentJobs(t *testing.T) {
	doc := parseDoc(t, `
jobs:
  lint: {}
  format: {}
`)
	text, ok := BuildDependencyGraph(doc)
	require.True(t, ok)
	assert.Equal(t, "graph TD\n  lint\n  format\n", text)
}

func TestBuildDependencyGraph_NeedsSequenceOrder(t *testing.T) {
	doc := parseDoc(t, `
jobs:
  deploy:
    needs: [test, lint, build]
`)
	text, ok := BuildDependencyGraph(doc)
	require.True(t, ok)
	assert.Equal(t, "graph TD\n  test --> deploy\n  lint --> deploy\n  build --> deploy\n", text)
}

func TestBuildDependencyGraph_EmptyNeedsFallsBackToStandalone(t *testing.T) {
	// A present-but-empty needs list yields no edges, so the job falls
	// back to the standalone-node rule and still appears in the graph.
	doc := parseDoc(t, `
jobs:
  floating:
    needs: []
  anchor: {}
`)
	text, ok := BuildDependencyGraph(doc)
	require.True(t, ok)
	assert.Equal(t, "graph TD\n  floating\n  anchor\n", text)
}

func TestBuildDependencyGraph_EmptyNeedsReferencedElsewhere(t *testing.T) {
	// When another job's edge already introduces the node, the
	// empty-needs job gets no duplicate standalone line.
	doc := parseDoc(t, `
jobs:
  floating:
    needs: []
  follower:
    needs: floating
`)
	text, ok := BuildDependencyGraph(doc)
	require.True(t, ok)
	assert.Equal(t, "graph TD\n  floating --> follower\n", text)
}

func TestBuildDependencyGraph_DuplicatesAndSelfLoopsPassThrough(t *testing.T) {
	doc := parseDoc(t, `
jobs:
  ouro:
    needs: [ouro, build, build]
`)
	text, ok := BuildDependencyGraph(doc)
	require.True(t, ok)
	assert.Equal(t, "graph TD\n  ouro --> ouro\n  build --> ouro\n  build --> ouro\n", text)
}

func TestBuildDependencyGraph_UndefinedDependencyKept(t *testing.T) {
	// Referenced names are not validated against the job set; the
	// renderer deals with undefined nodes.
	doc := parseDoc(t, `
jobs:
  test:
    needs: does-not-exist
`)
	text, ok := BuildDependencyGraph(doc)
	require.True(t, ok)
	assert.Contains(t, text, "  does-not-exist --> test\n")
}

func TestBuildDependencyGraph_Idempotent(t *testing.T) {
	doc := parseDoc(t, `
jobs:
  a: {}
  b:
    needs: a
`)
	first, ok1 := BuildDependencyGraph(doc)
	second, ok2 := BuildDependencyGraph(doc)
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, first, second)
}
