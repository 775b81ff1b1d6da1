package engine

import "strings"

// Display glyphs for multiply and divide as shown on the button grid. The
// buffer stores these; only a transient normalized copy is evaluated.
const (
	GlyphMultiply = "×"
	GlyphDivide   = "÷"
)

var normalizer = strings.NewReplacer(GlyphMultiply, "*", GlyphDivide, "/")

// Normalize maps display glyphs to the canonical arithmetic operators the
// validator and evaluator understand.
func Normalize(expr string) string {
	return normalizer.Replace(expr)
}
