// Package escape implements the literal-safety transform for embedding
// style sheets in generated program text.
package escape

import (
	"fmt"
	"strings"

	"go.trai.ch/plugkit/internal/core/ports"
)

var _ ports.Escaper = (*Escaper)(nil)

// Escaper implements ports.Escaper for backtick template literals.
type Escaper struct{}

// NewEscaper creates a new Escaper.
func NewEscaper() *Escaper {
	return &Escaper{}
}

// EscapeForLiteral escapes the content so it can be spliced between the
// backticks of a template literal without altering the parse of the
// surrounding program.
//
// The pass order is a correctness invariant: backslashes must be escaped
// before the dollar and backtick passes so the escapes those passes
// introduce are not themselves re-escaped. Control characters go last as
// four-hex-digit Unicode escapes; everything printable above U+009F passes
// through untouched because the rendered styles depend on it.
func (e *Escaper) EscapeForLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `$`, `\$`)
	s = strings.ReplaceAll(s, "`", "\\`")

	if !strings.ContainsFunc(s, isControl) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isControl(r) {
			fmt.Fprintf(&b, `\u%04x`, r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isControl reports whether r is an ASCII (U+0000..U+001F) or C1
// (U+007F..U+009F) control character.
func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r <= 0x9f)
}
