// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/plugkit/internal/adapters/config"
	_ "go.trai.ch/plugkit/internal/adapters/escape"
	_ "go.trai.ch/plugkit/internal/adapters/logger"
	_ "go.trai.ch/plugkit/internal/adapters/resolver"
	_ "go.trai.ch/plugkit/internal/adapters/styles"
	// Register app nodes.
	_ "go.trai.ch/plugkit/internal/app"
)
