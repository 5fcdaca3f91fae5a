package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	fsadapter "go.trai.ch/shrink/internal/adapters/fs"
	"go.trai.ch/shrink/internal/app"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports/mocks"
	"go.trai.ch/shrink/internal/engine/invocation"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	loader    *mocks.MockConfigLoader
	artifacts *mocks.MockArtifactProvider
	executor  *mocks.MockExecutor
	store     *mocks.MockRunRecordStore
	hasher    *mocks.MockHasher
	telemetry *mocks.MockTelemetry
	vertex    *mocks.MockVertex
	app       *app.App

	infos []string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:    mocks.NewMockConfigLoader(ctrl),
		artifacts: mocks.NewMockArtifactProvider(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		store:     mocks.NewMockRunRecordStore(ctrl),
		hasher:    mocks.NewMockHasher(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		vertex:    mocks.NewMockVertex(ctrl),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		f.infos = append(f.infos, msg)
	}).AnyTimes()

	builder := invocation.NewBuilder(fsadapter.NewFileSystem(), log)
	f.app = app.New(f.loader, f.artifacts, builder, f.executor, f.store, f.hasher, f.telemetry, log)
	return f
}

func manifest(t *testing.T) *domain.Manifest {
	t.Helper()
	base := t.TempDir()
	target := filepath.Join(base, "target")
	require.NoError(t, os.MkdirAll(target, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(target, "app.jar"), []byte("PK"), 0o600))

	return &domain.Manifest{
		Project: domain.Project{Name: "app", BaseDir: base},
		Config: domain.Configuration{
			TargetDirectory:   target,
			Packaging:         domain.PackagingJar,
			FinalName:         "app",
			InFilter:          "!module-info.class",
			IncludeDependency: true,
		},
		JVM: domain.JVM{JavaHome: "/opt/jdk", Args: []string{"-Xmx1g"}},
	}
}

var (
	libArtifact      = domain.Artifact{GroupID: "org.example", ArtifactID: "lib", Version: "1.0", Path: "/repo/lib-1.0.jar"}
	proguardArtifact = domain.Artifact{GroupID: "com.guardsquare", ArtifactID: "proguard-base", Version: "7.4.2", Path: "/repo/proguard-base-7.4.2.jar"}
)

func TestApp_Run(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		m := manifest(t)
		target := m.Config.TargetDirectory
		ctx := context.Background()

		f.loader.EXPECT().Load("shrink.yaml").Return(m, nil)
		f.artifacts.EXPECT().ResolveDependencies(m).Return([]domain.Artifact{libArtifact}, nil)
		f.artifacts.EXPECT().ResolvePlugins(m).Return([]domain.Artifact{proguardArtifact}, nil)
		f.hasher.EXPECT().ComputePathHash(filepath.Join(target, "app_proguard_base.jar")).Return("in", nil)
		f.telemetry.EXPECT().Record(gomock.Any(), "proguard app").Return(ctx, f.vertex)
		f.vertex.EXPECT().Log(domain.LogLevelDebug, gomock.Any())

		wantArgs := append([]string{
			"-injars", filepath.Join(target, "app_proguard_base.jar") + "(!module-info.class)",
			"-outjars", filepath.Join(target, "app.jar"),
			"-libraryjars", "/repo/lib-1.0.jar",
		}, domain.DefaultOptions()...)

		f.executor.EXPECT().Execute(ctx, domain.ProcessRequest{
			Plugins:    []domain.Artifact{proguardArtifact},
			Args:       wantArgs,
			JavaHome:   "/opt/jdk",
			JVMArgs:    []string{"-Xmx1g"},
			WorkingDir: m.Project.BaseDir,
		}).Return(nil)
		f.vertex.EXPECT().Complete(nil)
		f.hasher.EXPECT().ComputePathHash(filepath.Join(target, "app.jar")).Return("out", nil)
		f.store.EXPECT().Put(domain.RunRecord{
			Project:    "app",
			InputHash:  "in",
			OutputHash: "out",
			Args:       wantArgs,
			Timestamp:  time.Now(),
		}).Return(nil)

		err := f.app.Run(ctx, app.RunOptions{ConfigPath: "shrink.yaml"})
		require.NoError(t, err)
		assert.Contains(t, f.infos, "Execute ProGuard: "+strings.Join(wantArgs, " "))
	})
}

func TestApp_Run_SkipFlag(t *testing.T) {
	f := newFixture(t)
	m := manifest(t)

	// Nothing but the loader may be called.
	f.loader.EXPECT().Load("shrink.yaml").Return(m, nil)

	err := f.app.Run(context.Background(), app.RunOptions{ConfigPath: "shrink.yaml", Skip: true})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(m.Config.TargetDirectory, "app.jar"))
}

func TestApp_Run_SkipManifest(t *testing.T) {
	f := newFixture(t)
	m := manifest(t)
	m.Config.Skip = true

	f.loader.EXPECT().Load("shrink.yaml").Return(m, nil)

	err := f.app.Run(context.Background(), app.RunOptions{ConfigPath: "shrink.yaml"})
	require.NoError(t, err)
}

func TestApp_Run_NoInput(t *testing.T) {
	f := newFixture(t)
	m := manifest(t)
	m.Config.Packaging = "pom"

	f.loader.EXPECT().Load("shrink.yaml").Return(m, nil)

	err := f.app.Run(context.Background(), app.RunOptions{ConfigPath: "shrink.yaml"})
	require.NoError(t, err)
}

func TestApp_Run_ExcludedDependencies(t *testing.T) {
	f := newFixture(t)
	m := manifest(t)
	m.Config.IncludeDependency = false
	ctx := context.Background()

	f.loader.EXPECT().Load(gomock.Any()).Return(m, nil)
	f.artifacts.EXPECT().ResolvePlugins(m).Return([]domain.Artifact{proguardArtifact}, nil)
	f.hasher.EXPECT().ComputePathHash(gomock.Any()).Return("hash", nil).Times(2)
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).Return(ctx, f.vertex)
	f.vertex.EXPECT().Log(gomock.Any(), gomock.Any())
	f.executor.EXPECT().Execute(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, req domain.ProcessRequest) error {
		assert.NotContains(t, req.Args, "-libraryjars")
		return nil
	})
	f.vertex.EXPECT().Complete(nil)
	f.store.EXPECT().Put(gomock.Any()).Return(nil)

	require.NoError(t, f.app.Run(ctx, app.RunOptions{}))
}

func TestApp_Run_ExecutionFailed(t *testing.T) {
	f := newFixture(t)
	m := manifest(t)
	ctx := context.Background()
	execErr := errors.Join(errors.New("exit status 1"), domain.ErrExecutionFailed)

	f.loader.EXPECT().Load(gomock.Any()).Return(m, nil)
	f.artifacts.EXPECT().ResolveDependencies(m).Return(nil, nil)
	f.artifacts.EXPECT().ResolvePlugins(m).Return([]domain.Artifact{proguardArtifact}, nil)
	f.hasher.EXPECT().ComputePathHash(gomock.Any()).Return("in", nil)
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).Return(ctx, f.vertex)
	f.vertex.EXPECT().Log(gomock.Any(), gomock.Any())
	f.executor.EXPECT().Execute(ctx, gomock.Any()).Return(execErr)
	f.vertex.EXPECT().Complete(execErr)

	err := f.app.Run(ctx, app.RunOptions{})
	require.ErrorIs(t, err, domain.ErrExecutionFailed)
}

func TestApp_Run_Errors(t *testing.T) {
	t.Run("config", func(t *testing.T) {
		f := newFixture(t)
		f.loader.EXPECT().Load(gomock.Any()).Return(nil, domain.ErrConfigNotFound)

		err := f.app.Run(context.Background(), app.RunOptions{})
		require.ErrorIs(t, err, domain.ErrConfigNotFound)
	})

	t.Run("dependencies", func(t *testing.T) {
		f := newFixture(t)
		m := manifest(t)
		f.loader.EXPECT().Load(gomock.Any()).Return(m, nil)
		f.artifacts.EXPECT().ResolveDependencies(m).Return(nil, domain.ErrArtifactNotFound)

		err := f.app.Run(context.Background(), app.RunOptions{})
		require.ErrorIs(t, err, domain.ErrArtifactNotFound)
		assert.FileExists(t, filepath.Join(m.Config.TargetDirectory, "app.jar"))
	})

	t.Run("plugins", func(t *testing.T) {
		f := newFixture(t)
		m := manifest(t)
		f.loader.EXPECT().Load(gomock.Any()).Return(m, nil)
		f.artifacts.EXPECT().ResolveDependencies(m).Return(nil, nil)
		f.artifacts.EXPECT().ResolvePlugins(m).Return(nil, domain.ErrArtifactNotFound)

		err := f.app.Run(context.Background(), app.RunOptions{})
		require.ErrorIs(t, err, domain.ErrArtifactNotFound)
		assert.FileExists(t, filepath.Join(m.Config.TargetDirectory, "app.jar"))
	})

	t.Run("missing input", func(t *testing.T) {
		f := newFixture(t)
		m := manifest(t)
		m.Config.Injar = "other.jar"
		f.loader.EXPECT().Load(gomock.Any()).Return(m, nil)
		f.artifacts.EXPECT().ResolveDependencies(m).Return(nil, nil)
		f.artifacts.EXPECT().ResolvePlugins(m).Return(nil, nil)

		err := f.app.Run(context.Background(), app.RunOptions{})
		require.ErrorIs(t, err, domain.ErrMissingInput)
	})

	t.Run("store", func(t *testing.T) {
		f := newFixture(t)
		m := manifest(t)
		ctx := context.Background()
		f.loader.EXPECT().Load(gomock.Any()).Return(m, nil)
		f.artifacts.EXPECT().ResolveDependencies(m).Return(nil, nil)
		f.artifacts.EXPECT().ResolvePlugins(m).Return(nil, nil)
		f.hasher.EXPECT().ComputePathHash(gomock.Any()).Return("hash", nil).Times(2)
		f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).Return(ctx, f.vertex)
		f.vertex.EXPECT().Log(gomock.Any(), gomock.Any())
		f.executor.EXPECT().Execute(ctx, gomock.Any()).Return(nil)
		f.vertex.EXPECT().Complete(nil)
		f.store.EXPECT().Put(gomock.Any()).Return(domain.ErrStoreWriteFailed)

		err := f.app.Run(ctx, app.RunOptions{})
		require.ErrorIs(t, err, domain.ErrStoreWriteFailed)
	})
}

func TestApp_Effective(t *testing.T) {
	f := newFixture(t)
	m := manifest(t)
	f.loader.EXPECT().Load("shrink.yaml").Return(m, nil)

	got, err := f.app.Effective("shrink.yaml")
	require.NoError(t, err)
	assert.Equal(t, "app.jar", got.Config.Injar)
	assert.Equal(t, "app.jar", got.Config.Outjar)
}

func TestApp_Status(t *testing.T) {
	f := newFixture(t)
	m := manifest(t)
	record := &domain.RunRecord{Project: "app", InputHash: "in"}

	f.loader.EXPECT().Load("shrink.yaml").Return(m, nil).Times(2)
	f.store.EXPECT().Get("app").Return(record, nil)
	f.store.EXPECT().Get("app").Return(nil, domain.ErrStoreReadFailed)

	got, err := f.app.Status("shrink.yaml")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	_, err = f.app.Status("shrink.yaml")
	require.ErrorIs(t, err, domain.ErrStoreReadFailed)
}

func TestApp_LastRun(t *testing.T) {
	f := newFixture(t)
	run := &domain.RunLog{Name: "proguard app", Output: []byte("ProGuard, version 7.4.2\n")}

	f.telemetry.EXPECT().LastRun().Return(run, nil)
	f.telemetry.EXPECT().LastRun().Return(nil, domain.ErrJournalReadFailed)

	got, err := f.app.LastRun()
	require.NoError(t, err)
	assert.Equal(t, run, got)

	_, err = f.app.LastRun()
	require.ErrorIs(t, err, domain.ErrJournalReadFailed)
}
