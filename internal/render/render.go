package render

import (
	"fmt"

	"github.com/dshills/govlint/internal/schema"
)

// Renderer formats a Report into bytes for output.
type Renderer interface {
	Render(report *schema.Report) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "json" (default), "md", "ansi".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "json":
		return &jsonRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	case "ansi":
		return &ansiRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are json, md, ansi", format)
	}
}
