package ports

// PathResolver locates the plugin's installation root and the install
// locations of named sibling packages, independent of working directory,
// installation method, or operating system.
//
// Results are memoized for the process lifetime: repeated calls return the
// first resolution even if the filesystem or environment changed in
// between. ClearCache drops the memo.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PathResolver interface {
	// ResolveRoot returns the absolute plugin root. It never fails to
	// resolve: when no strategy matches it degrades to the current working
	// directory.
	ResolveRoot() (string, error)

	// ResolveDependency returns the absolute install path of the named
	// package. Absence is an explicit error, never an empty result.
	ResolveDependency(name string) (string, error)

	// ResolveRelative joins rel onto the root and normalizes. The result is
	// guaranteed to stay inside the root; traversal outside it is an error.
	ResolveRelative(rel string) (string, error)

	// ClearCache drops all memoized resolutions.
	ClearCache()
}
