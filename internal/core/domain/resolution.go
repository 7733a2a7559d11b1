package domain

// Kind identifies what a resolution request is asking for.
type Kind string

const (
	// KindRoot resolves the plugin's own installation root.
	KindRoot Kind = "root"
	// KindDependency resolves the install location of a named sibling
	// package.
	KindDependency Kind = "dependency"
)

// CacheKey identifies a memoized resolution result. Root resolutions use an
// empty Name.
type CacheKey struct {
	Kind Kind
	Name string
}

// String returns a stable textual form of the key.
func (k CacheKey) String() string {
	if k.Name == "" {
		return string(k.Kind)
	}
	return string(k.Kind) + ":" + k.Name
}
