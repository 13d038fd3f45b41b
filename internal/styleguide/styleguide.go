// Package styleguide supplies the style-rules text that gates
// style-category rules. It is an external collaborator of the audit core:
// ingestion failures degrade to an empty context so the rule-based audit
// still runs — style rules are skipped, never failed.
package styleguide

import (
	"os"

	"go.uber.org/zap"
)

// Load reads the style-rules text from path. An empty path means the caller
// supplied no style guide. On read failure the error is logged and an empty
// context returned.
func Load(path string, log *zap.Logger) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("style guide unavailable; style rules will be skipped",
			zap.String("path", path),
			zap.Error(err))
		return ""
	}
	return string(data)
}
