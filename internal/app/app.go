// Package app implements the application layer for shrink.
package app

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/shrink/internal/engine/invocation"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	artifacts    ports.ArtifactProvider
	builder      *invocation.Builder
	executor     ports.Executor
	store        ports.RunRecordStore
	hasher       ports.Hasher
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	artifacts ports.ArtifactProvider,
	builder *invocation.Builder,
	executor ports.Executor,
	store ports.RunRecordStore,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		artifacts:    artifacts,
		builder:      builder,
		executor:     executor,
		store:        store,
		hasher:       hasher,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// RunOptions configures a single run.
type RunOptions struct {
	// ConfigPath is the manifest file or the directory containing it.
	ConfigPath string
	// Skip forces the step to be skipped regardless of the manifest.
	Skip bool
}

// Run loads the manifest, prepares the ProGuard invocation and executes it.
// A skipped step returns nil without touching the file system.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	m, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	cfg := m.Config
	if opts.Skip {
		cfg.Skip = true
	}

	var deps, plugins []domain.Artifact
	if !cfg.Skip && cfg.WithDefaults().Injar != "" {
		if cfg.IncludeDependency {
			deps, err = a.artifacts.ResolveDependencies(m)
			if err != nil {
				return zerr.Wrap(err, "failed to resolve dependencies")
			}
		}

		// Plugins are resolved up front so a bad declaration fails before the
		// input artifact is moved.
		plugins, err = a.artifacts.ResolvePlugins(m)
		if err != nil {
			return zerr.Wrap(err, "failed to resolve plugins")
		}
	}

	inv, err := a.builder.Build(cfg, deps)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to prepare ProGuard invocation"), "project", m.Project.Name)
	}
	if !inv.Runnable() {
		a.logger.Debug("ProGuard step not run: " + inv.Skip.String())
		return nil
	}

	inputHash, err := a.hasher.ComputePathHash(inv.InputPath)
	if err != nil {
		return zerr.Wrap(err, "failed to hash input artifact")
	}

	ctx, vertex := a.telemetry.Record(ctx, "proguard "+m.Project.Name)
	vertex.Log(domain.LogLevelDebug, "input "+inv.InputPath+" "+inputHash)

	a.logger.Info("running ProGuard for " + m.Project.Name)
	a.logger.Info("Execute ProGuard: " + strings.Join(inv.Args, " "))
	err = a.executor.Execute(ctx, domain.ProcessRequest{
		Plugins:    plugins,
		Args:       inv.Args,
		JavaHome:   m.JVM.JavaHome,
		JVMArgs:    m.JVM.Args,
		WorkingDir: m.Project.BaseDir,
	})
	vertex.Complete(err)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "ProGuard execution failed"), "project", m.Project.Name)
	}

	outputHash, err := a.hasher.ComputePathHash(inv.OutputPath)
	if err != nil {
		return zerr.Wrap(err, "failed to hash output artifact")
	}

	record := domain.RunRecord{
		Project:    m.Project.Name,
		InputHash:  inputHash,
		OutputHash: outputHash,
		Args:       inv.Args,
		Timestamp:  time.Now(),
	}
	if err := a.store.Put(record); err != nil {
		return zerr.Wrap(err, "failed to store run record")
	}

	a.logger.Info("ProGuard wrote " + inv.OutputPath)
	return nil
}

// Effective returns the manifest at configPath with the packaging defaults applied.
func (a *App) Effective(configPath string) (*domain.Manifest, error) {
	m, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	m.Config = m.Config.WithDefaults()
	return m, nil
}

// Status returns the last run record of the project at configPath, or nil if
// the project has not been run yet.
func (a *App) Status(configPath string) (*domain.RunRecord, error) {
	m, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	record, err := a.store.Get(m.Project.Name)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read run record")
	}
	return record, nil
}

// LastRun returns the output of the most recent recorded ProGuard run, or
// nil if no run has been recorded.
func (a *App) LastRun() (*domain.RunLog, error) {
	run, err := a.telemetry.LastRun()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read last run")
	}
	return run, nil
}
