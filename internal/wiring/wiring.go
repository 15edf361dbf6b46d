// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/scribe/internal/adapters/config"
	_ "go.trai.ch/scribe/internal/adapters/logger"
	_ "go.trai.ch/scribe/internal/adapters/project"
	// Register app nodes.
	_ "go.trai.ch/scribe/internal/app"
)
