// Package invocation builds the ProGuard argument sequence for a build step.
package invocation

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
)

// BaseSuffix is appended to the input artifact name when it is moved out of the way.
const BaseSuffix = "_proguard_base"

const (
	argInclude     = "-include"
	argInjars      = "-injars"
	argOutjars     = "-outjars"
	argLibraryjars = "-libraryjars"
)

// Builder derives the ProGuard invocation from a configuration.
//
// Building is not free of side effects: the input artifact is renamed to its
// side-path and a stale output artifact is deleted, so that ProGuard never
// reads from the location it writes to.
type Builder struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(fsys ports.FileSystem, logger ports.Logger) *Builder {
	return &Builder{
		fs:     fsys,
		logger: logger,
	}
}

// Build returns the invocation for cfg. deps is the resolved dependency
// artifact set, used in its given order when cfg.IncludeDependency is set.
//
// A skipped step (cfg.Skip or no input artifact) is not an error: the returned
// invocation is simply not runnable.
func (b *Builder) Build(cfg domain.Configuration, deps []domain.Artifact) (*domain.Invocation, error) {
	if cfg.Skip {
		b.logger.Info("ProGuard is skipped.")
		return &domain.Invocation{Skip: domain.SkipDisabled}, nil
	}

	b.logger.Debug("package type: " + cfg.Packaging)
	cfg = cfg.WithDefaults()
	b.logger.Debug("injar: " + cfg.Injar)
	b.logger.Debug("outjar: " + cfg.Outjar)

	if cfg.Injar == "" {
		b.logger.Info("ProGuard has no input artifact, nothing to do.")
		return &domain.Invocation{Skip: domain.SkipNoInput}, nil
	}

	inv := &domain.Invocation{}

	b.appendConfigFile(inv, cfg)

	inputPath, err := b.relocateInput(cfg)
	if err != nil {
		return nil, err
	}
	inv.InputPath = inputPath
	inv.Args = append(inv.Args, argInjars, withFilter(inputPath, cfg.InFilter))

	outputPath, err := b.clearOutput(cfg)
	if err != nil {
		return nil, err
	}
	inv.OutputPath = outputPath
	inv.Args = append(inv.Args, argOutjars, withFilter(outputPath, cfg.OutFilter))

	for _, lib := range cfg.Libs {
		inv.Args = append(inv.Args, argLibraryjars, lib)
	}

	b.appendDependencies(inv, cfg, deps)

	if len(cfg.Options) > 0 {
		inv.Args = append(inv.Args, cfg.Options...)
	} else {
		inv.Args = append(inv.Args, domain.DefaultOptions()...)
	}

	return inv, nil
}

func (b *Builder) appendConfigFile(inv *domain.Invocation, cfg domain.Configuration) {
	if cfg.ConfigFile == "" {
		return
	}
	if _, err := b.fs.Stat(cfg.ConfigFile); err != nil {
		b.logger.Debug("ProGuard configuration file not found, ignoring: " + cfg.ConfigFile)
		return
	}
	path := absolute(cfg.ConfigFile)
	b.logger.Debug("ProGuard configuration file: " + path)
	inv.Args = append(inv.Args, argInclude, path)
}

// relocateInput moves the input artifact to its side-path and returns the side-path.
func (b *Builder) relocateInput(cfg domain.Configuration) (string, error) {
	path := absolute(filepath.Join(cfg.TargetDirectory, cfg.Injar))

	info, err := b.fs.Stat(path)
	if err != nil {
		return "", errors.Join(zerr.With(zerr.Wrap(err, "can't find input artifact"), "path", path), domain.ErrMissingInput)
	}

	side := sidePath(path, info.IsDir())
	if err := b.remove(side); err != nil {
		return "", err
	}

	if err := b.fs.Rename(path, side); err != nil {
		renameErr := zerr.With(zerr.Wrap(err, "can't rename input artifact"), "from", path)
		return "", errors.Join(zerr.With(renameErr, "to", side), domain.ErrRelocationFailed)
	}

	b.logger.Debug("injar file: " + side)
	return side, nil
}

// clearOutput deletes whatever occupies the output path and returns that path.
func (b *Builder) clearOutput(cfg domain.Configuration) (string, error) {
	path := absolute(filepath.Join(cfg.TargetDirectory, cfg.Outjar))
	if err := b.remove(path); err != nil {
		return "", err
	}
	b.logger.Debug("outjar file: " + path)
	return path, nil
}

func (b *Builder) remove(path string) error {
	if _, err := b.fs.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	b.logger.Debug("deleting " + path)
	if err := b.fs.RemoveAll(path); err != nil {
		return errors.Join(zerr.With(zerr.Wrap(err, "can't delete path"), "path", path), domain.ErrCleanupFailed)
	}
	return nil
}

func (b *Builder) appendDependencies(inv *domain.Invocation, cfg domain.Configuration, deps []domain.Artifact) {
	if !cfg.IncludeDependency {
		return
	}

	arg := argLibraryjars
	if cfg.IncludeDependencyInjar {
		arg = argInjars
	}

	for _, dep := range deps {
		b.logger.Debug(fmt.Sprintf("dependency %s: %s", dep.Coordinates(), dep.Path))
		inv.Args = append(inv.Args, arg, withFilter(absolute(dep.Path), cfg.DependencyFilter))
	}
}

// sidePath returns the relocation target for the input artifact at path.
func sidePath(path string, isDir bool) string {
	dir, name := filepath.Split(path)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + BaseSuffix
	if !isDir {
		name += ".jar"
	}
	return filepath.Join(dir, name)
}

// withFilter appends "(filter)" to path when filter is non-empty.
func withFilter(path, filter string) string {
	if filter == "" {
		return path
	}
	return path + "(" + filter + ")"
}

func absolute(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
