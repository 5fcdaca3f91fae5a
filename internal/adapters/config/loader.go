// Package config provides the manifest loader for shrink.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the manifest looked up when a directory is given.
	DefaultFilename = "shrink.yaml"

	// SkipEnv overrides proguard.skip when set to a boolean value.
	SkipEnv = "SHRINK_SKIP"

	defaultConfigFile       = "proguard.conf"
	defaultInFilter         = "!module-info.class,!META-INF/maven/**"
	defaultOutFilter        = "!META-INF/maven/**"
	defaultDependencyFilter = "!module-info.class,!META-INF/**"
	defaultBuildDirectory   = "target"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the manifest at path. If path is a directory, the default
// manifest file inside it is used.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultFilename)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
	}

	//nolint:gosec // path is provided by user
	data, err := os.ReadFile(abs)
	if err != nil {
		detail := zerr.With(zerr.Wrap(err, "failed to read config file"), "path", abs)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(detail, domain.ErrConfigNotFound)
		}
		return nil, detail
	}

	var dto Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", abs), domain.ErrConfigParseFailed)
	}

	m, err := l.toManifest(&dto, filepath.Dir(abs))
	if err != nil {
		return nil, zerr.With(err, "path", abs)
	}

	l.Logger.Debug("loaded manifest " + abs)
	return m, nil
}

func (l *Loader) toManifest(dto *Manifest, baseDir string) (*domain.Manifest, error) {
	name := expand(dto.Project.Name)
	if name == "" {
		name = filepath.Base(baseDir)
	}

	packaging := expand(dto.Project.Packaging)
	if packaging == "" {
		packaging = domain.PackagingJar
	}

	finalName := expand(dto.Project.FinalName)
	if finalName == "" {
		finalName = name
	}

	buildDir := expand(dto.Project.BuildDirectory)
	if buildDir == "" {
		buildDir = defaultBuildDirectory
	}

	pg := dto.ProGuard
	skip, err := resolveSkip(pg.Skip)
	if err != nil {
		return nil, err
	}

	cfg := domain.Configuration{
		Skip:                   skip,
		ConfigFile:             resolvePath(baseDir, expand(stringOr(pg.ConfigFile, defaultConfigFile))),
		TargetDirectory:        resolvePath(baseDir, buildDir),
		Injar:                  expand(pg.Injar),
		Outjar:                 expand(pg.Outjar),
		InFilter:               expand(stringOr(pg.InFilter, defaultInFilter)),
		OutFilter:              expand(stringOr(pg.OutFilter, defaultOutFilter)),
		DependencyFilter:       expand(stringOr(pg.DependencyFilter, defaultDependencyFilter)),
		IncludeDependency:      boolOr(pg.IncludeDependency, true),
		IncludeDependencyInjar: boolOr(pg.IncludeDependencyInjar, false),
		Libs:                   expandAll(pg.Libs),
		Options:                expandAll(pg.Options),
		Packaging:              packaging,
		FinalName:              finalName,
	}

	deps, err := toRefs(dto.Dependencies, "dependencies")
	if err != nil {
		return nil, err
	}
	plugins, err := toRefs(dto.Plugins, "plugins")
	if err != nil {
		return nil, err
	}

	repo := expand(dto.Repository)
	if repo == "" {
		repo = defaultRepository()
	}

	javaHome := expand(dto.JVM.JavaHome)
	if javaHome != "" {
		javaHome = resolvePath(baseDir, javaHome)
	}

	return &domain.Manifest{
		Project: domain.Project{
			Name:    name,
			BaseDir: baseDir,
		},
		Config:       cfg,
		Dependencies: deps,
		Plugins:      plugins,
		Repository:   resolvePath(baseDir, repo),
		JVM: domain.JVM{
			JavaHome: javaHome,
			Args:     expandAll(dto.JVM.Args),
		},
	}, nil
}

// resolveSkip applies the SHRINK_SKIP environment override to the manifest value.
func resolveSkip(v *bool) (bool, error) {
	raw, ok := os.LookupEnv(SkipEnv)
	if !ok || raw == "" {
		return boolOr(v, false), nil
	}
	skip, err := strconv.ParseBool(raw)
	if err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "invalid boolean in environment"), SkipEnv, raw)
	}
	return skip, nil
}

func toRefs(dtos []ArtifactDTO, section string) ([]domain.ArtifactRef, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	refs := make([]domain.ArtifactRef, 0, len(dtos))
	for i, dto := range dtos {
		ref := domain.ArtifactRef{
			Coordinates: expand(dto.Coordinates),
			Path:        expand(dto.Path),
		}
		if ref.Coordinates == "" && ref.Path == "" {
			err := zerr.Wrap(domain.ErrInvalidConfig, "artifact needs coordinates or a path")
			return nil, zerr.With(zerr.With(err, "section", section), "index", i)
		}
		if ref.Coordinates != "" {
			if _, err := domain.ParseCoordinates(ref.Coordinates); err != nil {
				return nil, zerr.With(err, "section", section)
			}
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// expand replaces ${VAR} references with the value of the environment variable.
// Unbraced $ sequences are kept, since ProGuard class specifications use them.
func expand(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}

func expandAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = expand(s)
	}
	return out
}

func resolvePath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

func defaultRepository() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".m2", "repository")
}

func stringOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
