package jvm

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/shrink/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/shrink/internal/core/ports"
)

// NodeID is the unique identifier for the process runner Graft node.
const NodeID graft.ID = "adapter.executor"

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log, os.Stdout, os.Stderr), nil
		},
	})
}
