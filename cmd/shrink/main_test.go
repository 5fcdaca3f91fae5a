package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"shrink": func() { os.Exit(run()) },
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

func TestRun_ExitCode(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		java         string
		args         []string
		expectedExit int
	}{
		{
			name:         "ProGuard exit code is propagated",
			java:         "#!/bin/sh\nexit 3\n",
			args:         []string{"shrink", "run"},
			expectedExit: 3,
		},
		{
			name:         "Successful run",
			java:         "#!/bin/sh\nexit 0\n",
			args:         []string{"shrink", "run", "--skip"},
			expectedExit: 0,
		},
		{
			name:         "Unknown command",
			java:         "#!/bin/sh\nexit 0\n",
			args:         []string{"shrink", "unknown"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)

			bin := filepath.Join(dir, "bin")
			require.NoError(t, os.MkdirAll(bin, 0o750))
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "target"), 0o750))
			require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib"), 0o750))
			//nolint:gosec // the fake launcher must be executable
			require.NoError(t, os.WriteFile(filepath.Join(bin, "java"), []byte(tt.java), 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "target", "app.jar"), []byte("PK"), 0o600))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "proguard-base-7.4.2.jar"), []byte("PK"), 0o600))
			manifest := "project:\n  name: app\n  finalName: app\nplugins:\n  - path: lib/proguard-base-*.jar\n"
			require.NoError(t, os.WriteFile(filepath.Join(dir, "shrink.yaml"), []byte(manifest), 0o600))

			t.Setenv("JAVA_HOME", "")
			t.Setenv("PATH", bin+string(filepath.ListSeparator)+os.Getenv("PATH"))
			os.Args = tt.args

			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
