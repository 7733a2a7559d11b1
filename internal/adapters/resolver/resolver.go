// Package resolver implements the root/dependency path resolution cascade.
package resolver

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PathResolver = (*Resolver)(nil)

// Resolver implements ports.PathResolver. Each resolution tries an ordered
// list of strategies and short-circuits on the first that succeeds; results
// are memoized in the injected Cache for the process lifetime.
type Resolver struct {
	settings domain.Settings
	cache    *Cache
}

// New creates a new Resolver with the given settings and cache.
func New(settings domain.Settings, cache *Cache) *Resolver {
	return &Resolver{
		settings: settings.Normalize(),
		cache:    cache,
	}
}

// strategy is a single resolution attempt: a candidate path and whether the
// attempt succeeded.
type strategy func() (string, bool)

func firstOf(strategies ...strategy) (string, bool) {
	for _, s := range strategies {
		if path, ok := s(); ok {
			return path, true
		}
	}
	return "", false
}

// ResolveRoot returns the absolute installation root of the plugin package.
// It degrades to the current working directory when no strategy matches, so
// it only fails when the working directory itself cannot be determined.
func (r *Resolver) ResolveRoot() (string, error) {
	return r.cache.Resolve(domain.CacheKey{Kind: domain.KindRoot}, r.resolveRoot)
}

func (r *Resolver) resolveRoot() (string, error) {
	if path, ok := firstOf(r.rootOverride, r.markerScan); ok {
		return path, nil
	}
	// Last resort. Imprecise in environments where the working directory is
	// unrelated to the package, but callers treat it as a valid root.
	return os.Getwd()
}

// rootOverride honors the root override variable. The value is used
// verbatim, with no existence check beyond what the caller later requires.
func (r *Resolver) rootOverride() (string, bool) {
	if path := os.Getenv(r.settings.RootEnv); path != "" {
		return path, true
	}
	return "", false
}

// markerScan walks the candidate directories in order and picks the first
// one containing the package descriptor marker.
func (r *Resolver) markerScan() (string, bool) {
	for _, dir := range r.rootCandidates() {
		if !fileExists(filepath.Join(dir, r.settings.Marker)) {
			continue
		}
		if abs, err := filepath.Abs(dir); err == nil {
			return abs, true
		}
	}
	return "", false
}

// rootCandidates returns the ordered scan list: the working directory, the
// configured host-plugin install subpaths relative to it, and the
// development layout two levels above the binary's own location.
func (r *Resolver) rootCandidates() []string {
	candidates := append([]string{"."}, r.settings.Candidates...)
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Dir(filepath.Dir(filepath.Dir(exe))))
	}
	return candidates
}

// ResolveDependency returns the absolute install path of the named sibling
// package. Absence is an explicit error carrying every location tried.
func (r *Resolver) ResolveDependency(name string) (string, error) {
	if name == "" {
		return "", zerr.New("dependency name is empty")
	}
	key := domain.CacheKey{Kind: domain.KindDependency, Name: name}
	return r.cache.Resolve(key, func() (string, error) {
		return r.resolveDependency(name)
	})
}

func (r *Resolver) resolveDependency(name string) (string, error) {
	// The override wins unconditionally, independent of filesystem state.
	envVar := domain.OverrideVar(name)
	if path := os.Getenv(envVar); path != "" {
		return path, nil
	}

	root, err := r.ResolveRoot()
	if err != nil {
		return "", err
	}

	sibling := filepath.Join(root, "..", name)
	managed := filepath.Join(root, r.settings.ModulesDir, name)
	for _, dir := range []string{sibling, managed} {
		if dirExists(dir) {
			return filepath.Abs(dir)
		}
	}

	tried := []string{"$" + envVar, sibling, managed}
	var notFound error = zerr.Wrap(domain.ErrDependencyNotFound, "unable to resolve dependency "+name)
	notFound = zerr.With(notFound, "tried", strings.Join(tried, ", "))
	notFound = zerr.With(notFound, "suggestion", "install "+name+" next to the plugin or set "+envVar)
	return "", notFound
}

// ResolveRelative joins rel onto the resolved root and normalizes. The
// result must stay inside the root; anything that normalizes outside it is
// rejected as a traversal.
func (r *Resolver) ResolveRelative(rel string) (string, error) {
	root, err := r.ResolveRoot()
	if err != nil {
		return "", err
	}

	target := filepath.Join(root, rel)
	within, err := filepath.Rel(root, target)
	if err != nil || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		var traversal error = zerr.Wrap(domain.ErrPathTraversal, "refusing to resolve "+rel)
		traversal = zerr.With(traversal, "root", root)
		return "", zerr.With(traversal, "target", target)
	}
	return target, nil
}

// ClearCache drops all memoized resolutions; the next call recomputes from
// scratch.
func (r *Resolver) ClearCache() {
	r.cache.Clear()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
