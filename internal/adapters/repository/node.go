package repository

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shrink/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/core/ports"
)

// NodeID is the unique identifier for the artifact provider Graft node.
const NodeID graft.ID = "adapter.artifact_provider"

func init() {
	graft.Register(graft.Node[ports.ArtifactProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.FileSystemNodeID,
			fs.ResolverNodeID,
			fs.WalkerNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ArtifactProvider, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[*fs.Resolver](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(fsys, resolver, walker, log), nil
		},
	})
}
