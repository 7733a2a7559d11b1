package config

import "go.trai.ch/plugkit/internal/core/domain"

// DefaultFilename is the configuration file looked up in the working
// directory.
const DefaultFilename = "plugkit.yaml"

// Plugfile represents the structure of the plugkit.yaml configuration file.
type Plugfile struct {
	Version  string          `yaml:"version"`
	Resolver domain.Settings `yaml:"resolver"`
}
