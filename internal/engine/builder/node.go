package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/nobs/internal/adapters/fs"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nobs/internal/adapters/meta" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/nobs/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			meta.NodeID,
			fs.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			store, err := graft.Dep[ports.MetadataStore](ctx)
			if err != nil {
				return nil, err
			}

			workspace, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(store, workspace), nil
		},
	})
}
