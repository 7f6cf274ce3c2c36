// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/nobs/internal/adapters/config"
	_ "go.trai.ch/nobs/internal/adapters/console"
	_ "go.trai.ch/nobs/internal/adapters/fs"
	_ "go.trai.ch/nobs/internal/adapters/logger"
	_ "go.trai.ch/nobs/internal/adapters/meta"
	_ "go.trai.ch/nobs/internal/adapters/proc"
	_ "go.trai.ch/nobs/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/nobs/internal/app"
	_ "go.trai.ch/nobs/internal/engine/builder"
	_ "go.trai.ch/nobs/internal/engine/scheduler"
)
