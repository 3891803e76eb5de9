// Package render holds the glue to the external diagram renderer and
// the artifact exporter. The graph description text is opaque here; its
// production is pkg/viz's job, its interpretation the renderer's.
package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	apperrors "github.com/actionlens/actionlens/pkg/errors"
	"github.com/actionlens/actionlens/pkg/log"
)

// Renderer turns graph description text into a visual artifact.
type Renderer interface {
	Render(ctx context.Context, graphText string) ([]byte, error)
}

// MermaidCLI renders through an external mermaid-cli (mmdc) binary.
type MermaidCLI struct {
	// Binary is the renderer executable name or path
	Binary string
}

// NewMermaidCLI creates a renderer around the given binary.
func NewMermaidCLI(binary string) *MermaidCLI {
	return &MermaidCLI{Binary: binary}
}

// Render writes the graph text to a temporary file, invokes the
// renderer, and returns the produced SVG bytes. Any renderer failure,
// including the binary being absent, wraps ErrRenderFailed.
func (m *MermaidCLI) Render(ctx context.Context, graphText string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "actionlens-render-*")
	if err != nil {
		return nil, apperrors.WrapRenderError(m.Binary, err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	input := filepath.Join(dir, "graph.mmd")
	output := filepath.Join(dir, "graph.svg")

	if err := os.WriteFile(input, []byte(graphText), 0o600); err != nil {
		return nil, apperrors.WrapRenderError(m.Binary, err)
	}

	cmd := exec.CommandContext(ctx, m.Binary, "-i", input, "-o", output)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, apperrors.WrapRenderError(m.Binary, fmt.Errorf("%v: %s", err, out))
	}

	artifact, err := os.ReadFile(output)
	if err != nil {
		return nil, apperrors.WrapRenderError(m.Binary, err)
	}

	log.WithModule("render").Debug("rendered diagram", "bytes", len(artifact))

	return artifact, nil
}
