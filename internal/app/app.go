// Package app implements the application layer for plugkit.
package app

import (
	"os"

	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic: the developer-facing surface
// over the resolver and the escaper.
type App struct {
	resolver ports.PathResolver
	escaper  ports.Escaper
	styles   ports.StyleLoader
}

// New creates a new App instance.
func New(resolver ports.PathResolver, escaper ports.Escaper, styles ports.StyleLoader) *App {
	return &App{
		resolver: resolver,
		escaper:  escaper,
		styles:   styles,
	}
}

// Root returns the absolute installation root of the plugin package.
func (a *App) Root() (string, error) {
	return a.resolver.ResolveRoot()
}

// Dependency returns the absolute install path of the named sibling
// package.
func (a *App) Dependency(name string) (string, error) {
	return a.resolver.ResolveDependency(name)
}

// Relative resolves a root-relative path, guarded against traversal outside
// the root.
func (a *App) Relative(rel string) (string, error) {
	return a.resolver.ResolveRelative(rel)
}

// EscapeFile returns the generated module text embedding the style sheet at
// path. With raw set it returns just the escaped content, without the
// module wrapper.
func (a *App) EscapeFile(path string, raw bool) (string, error) {
	if !raw {
		return a.styles.LoadStyles(path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to read style sheet"), "path", path)
	}
	return a.escaper.EscapeForLiteral(string(data)), nil
}

// ClearCache drops all memoized resolutions.
func (a *App) ClearCache() {
	a.resolver.ClearCache()
}
