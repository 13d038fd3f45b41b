// Package document loads the input document to be audited and derives its
// metadata.
package document

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"strings"
)

// Document holds an input document with derived metadata.
type Document struct {
	Path      string
	Raw       string
	Hash      string // "sha256:<hex>"
	LineCount int
}

// Load reads a document from disk. The path "-" reads from stdin.
func Load(path string) (*Document, error) {
	if path == "-" {
		return FromReader("stdin", os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return fromBytes(path, data), nil
}

// FromReader reads a document from r, labelled with name for reporting.
func FromReader(name string, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document %q: %w", name, err)
	}
	return fromBytes(name, data), nil
}

func fromBytes(path string, data []byte) *Document {
	sum := sha256.Sum256(data)
	raw := string(data)
	return &Document{
		Path:      path,
		Raw:       raw,
		Hash:      fmt.Sprintf("sha256:%x", sum),
		LineCount: countLines(raw),
	}
}

// countLines counts content lines; a trailing newline does not produce a
// spurious extra line.
func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
