// Package styles implements the bundler load-hook for style-sheet imports.
package styles

import (
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StyleLoader = (*Loader)(nil)

// Loader reads a style sheet and emits the generated module text that
// embeds its escaped content in a template literal. Generated text is
// memoized by content hash for the process lifetime, so re-importing an
// unchanged sheet costs one read and one hash.
type Loader struct {
	escaper ports.Escaper

	mu    sync.RWMutex
	cache map[uint64]string
}

// NewLoader creates a new Loader using the given escaper.
func NewLoader(escaper ports.Escaper) *Loader {
	return &Loader{
		escaper: escaper,
		cache:   make(map[uint64]string),
	}
}

// LoadStyles reads the style sheet at path and returns program text
// embedding it. Escaping happens exactly once per distinct content; any
// minification must have run before the file reaches this hook.
func (l *Loader) LoadStyles(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the bundler's import graph
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read style sheet"), "path", path)
	}

	sum := xxhash.Sum64(data)

	l.mu.RLock()
	text, ok := l.cache[sum]
	l.mu.RUnlock()
	if ok {
		return text, nil
	}

	text = "const css = `" + l.escaper.EscapeForLiteral(string(data)) + "`;\nexport default css;\n"

	l.mu.Lock()
	l.cache[sum] = text
	l.mu.Unlock()

	return text, nil
}
