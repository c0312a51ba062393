package mapview

import (
	"errors"
	"fmt"
	"os"

	"github.com/piresc/routefinder/internal/pkg/opener"
)

// ErrArtifactMissing is returned when asked to show a map that was never written
var ErrArtifactMissing = errors.New("map artifact not found")

// Viewer shows a map artifact to the user
type Viewer struct {
	open opener.Func
}

// NewViewer creates a viewer; open defaults to the system browser
func NewViewer(open opener.Func) *Viewer {
	if open == nil {
		open = opener.File
	}
	return &Viewer{open: open}
}

// Open displays the artifact at path
func (v *Viewer) Open(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrArtifactMissing, path)
	}
	return v.open(path)
}
