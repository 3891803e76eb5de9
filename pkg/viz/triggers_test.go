package viz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExtractTriggers_Absent(t *testing.T) {
	assert.Nil(t, ExtractTriggers(nil))
	assert.Empty(t, ExtractTriggers(parseDoc(t, `jobs: {}`)))
}

func TestExtractTriggers_BareString(t *testing.T) {
	got := ExtractTriggers(parseDoc(t, `on: push`))
	require.Len(t, got, 1)
	assert.Equal(t, "push", got[0].Event)
	assert.Nil(t, got[0].Detail)
	assert.Empty(t, got[0].Text)
}

func TestExtractTriggers_MappingWithMixedDetail(t *testing.T) {
	got := ExtractTriggers(parseDoc(t, `
on:
  push:
    branches: [main, dev]
  release:
`))
	require.Len(t, got, 2)

	assert.Equal(t, "push", got[0].Event)
	require.NotNil(t, got[0].Detail)
	branches := got[0].Detail.Content[1]
	require.Equal(t, yaml.SequenceNode, branches.Kind)
	assert.Equal(t, "main", branches.Content[0].Value)
	assert.Equal(t, "dev", branches.Content[1].Value)

	assert.Equal(t, "release", got[1].Event)
	assert.Nil(t, got[1].Detail)
}

func TestExtractTriggers_Idempotent(t *testing.T) {
	doc := parseDoc(t, `on: [push, pull_request]`)
	first := ExtractTriggers(doc)
	second := ExtractTriggers(doc)
	require.Len(t, first, 2)
	assert.Equal(t, first, second)
}
