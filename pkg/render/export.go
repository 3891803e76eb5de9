package render

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	apperrors "github.com/actionlens/actionlens/pkg/errors"
)

// Export writes a rendered visual artifact to path and returns the path
// written. An empty path generates a default file name in the working
// directory.
func Export(artifact []byte, path string) (string, error) {
	if path == "" {
		path = DefaultArtifactName()
	}

	if err := os.WriteFile(path, artifact, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrExportFailed, err)
	}

	return path, nil
}

// DefaultArtifactName generates a collision-free default export file
// name.
func DefaultArtifactName() string {
	return fmt.Sprintf("workflow-diagram-%s.svg", uuid.NewString())
}
