package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shrink/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/shrink/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/shrink/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/shrink/internal/adapters/jvm"                //nolint:depguard // Wired in app layer
	"go.trai.ch/shrink/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/shrink/internal/adapters/repository"         //nolint:depguard // Wired in app layer
	"go.trai.ch/shrink/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/shrink/internal/engine/invocation"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			repository.NodeID,
			invocation.NodeID,
			jvm.NodeID,
			cas.NodeID,
			fs.HasherNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	artifacts, err := graft.Dep[ports.ArtifactProvider](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*invocation.Builder](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RunRecordStore](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, artifacts, builder, executor, store, hasher, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, telemetry), nil
}
