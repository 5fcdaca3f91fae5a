package invocation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shrink/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/core/ports"
)

// NodeID is the unique identifier for the invocation builder Graft node.
const NodeID graft.ID = "engine.invocation_builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.FileSystemNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(fsys, log), nil
		},
	})
}
