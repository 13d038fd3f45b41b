// Package diffview computes a line-level diff between the original and
// corrected documents. Presentation (HTML, ANSI) is a caller concern; this
// package only produces the typed line sequence.
package diffview

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/dshills/govlint/internal/schema"
)

// Render diffs original against corrected and returns one DiffLine per
// line, in document order. A replaced hunk decomposes into its Removed
// lines immediately followed by the corresponding Added lines. Render is
// stateless: the same inputs always yield the same output.
//
// Reconstruction invariant: joining the Content of all non-Removed lines
// with "\n" reproduces corrected exactly, and likewise non-Added lines
// reproduce original.
func Render(original, corrected string) []schema.DiffLine {
	lines, a, b := encodeLines(original, corrected)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(a, b, false)

	out := make([]schema.DiffLine, 0, len(a)+len(b))
	for _, d := range diffs {
		var kind schema.DiffKind
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = schema.DiffAdded
		case diffmatchpatch.DiffDelete:
			kind = schema.DiffRemoved
		default:
			kind = schema.DiffUnchanged
		}
		for _, tok := range d.Text {
			out = append(out, schema.DiffLine{Kind: kind, Content: lines[tok]})
		}
	}
	return out
}

// encodeLines maps each distinct line to a unique rune so the rune-level
// LCS in diffmatchpatch becomes a line-level LCS. Tokens skip the UTF-16
// surrogate range, which cannot round-trip through a Go string.
func encodeLines(original, corrected string) (map[rune]string, []rune, []rune) {
	lines := map[rune]string{}
	index := map[string]rune{}
	next := rune(1)

	encode := func(s string) []rune {
		parts := strings.Split(s, "\n")
		toks := make([]rune, len(parts))
		for i, line := range parts {
			tok, ok := index[line]
			if !ok {
				if next == 0xD800 {
					next = 0xE000
				}
				tok = next
				next++
				index[line] = tok
				lines[tok] = line
			}
			toks[i] = tok
		}
		return toks
	}

	a := encode(original)
	b := encode(corrected)
	return lines, a, b
}
