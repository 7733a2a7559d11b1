// Package domain contains the core value types for plugkit.
package domain

import "strings"

// Default values for Settings fields left empty by the configuration.
const (
	DefaultMarker     = "package.json"
	DefaultRootEnv    = "PLUGIN_ROOT"
	DefaultModulesDir = "node_modules"
)

// OverrideVarSuffix is appended to the mangled dependency name to form its
// override environment variable.
const OverrideVarSuffix = "_PATH"

// Settings controls how the resolver locates the plugin root and its
// sibling dependencies.
type Settings struct {
	// Marker is the package descriptor file whose presence identifies a
	// root candidate.
	Marker string `yaml:"marker"`

	// RootEnv is the environment variable that overrides root resolution.
	RootEnv string `yaml:"rootEnv"`

	// ModulesDir is the dependency-manager directory searched under the
	// root (e.g. node_modules).
	ModulesDir string `yaml:"modulesDir"`

	// Candidates are host-plugin install subpaths, relative to the working
	// directory, scanned for the marker after the working directory itself.
	Candidates []string `yaml:"candidates"`
}

// DefaultSettings returns the settings used when no configuration file is
// present.
func DefaultSettings() Settings {
	return Settings{
		Marker:     DefaultMarker,
		RootEnv:    DefaultRootEnv,
		ModulesDir: DefaultModulesDir,
	}
}

// Normalize fills empty fields with their defaults.
func (s Settings) Normalize() Settings {
	if s.Marker == "" {
		s.Marker = DefaultMarker
	}
	if s.RootEnv == "" {
		s.RootEnv = DefaultRootEnv
	}
	if s.ModulesDir == "" {
		s.ModulesDir = DefaultModulesDir
	}
	return s
}

// OverrideVar returns the environment variable that overrides resolution of
// the named dependency: the name uppercased, hyphens replaced with
// underscores, suffixed with _PATH.
func OverrideVar(name string) string {
	mangled := strings.ReplaceAll(strings.ToUpper(name), "-", "_")
	return mangled + OverrideVarSuffix
}
