package scheduler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nobs/internal/adapters/console"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nobs/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nobs/internal/adapters/meta"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nobs/internal/adapters/proc"               //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nobs/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nobs/internal/core/ports"
)

// NodeID is the unique identifier for the scheduler Graft node.
const NodeID graft.ID = "engine.scheduler"

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			proc.NodeID,
			meta.NodeID,
			console.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Scheduler, error) {
			launcher, err := graft.Dep[ports.Launcher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.MetadataStore](ctx)
			if err != nil {
				return nil, err
			}

			reporter, err := graft.Dep[ports.Reporter](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewScheduler(launcher, store, reporter, tracer, log), nil
		},
	})
}
