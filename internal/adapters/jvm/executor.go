// Package jvm runs ProGuard in a child Java process.
package jvm

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/shrink/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const maxLineSize = 1024 * 1024

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewExecutor creates a new Executor streaming process output to stdout and stderr.
func NewExecutor(logger ports.Logger, stdout, stderr io.Writer) *Executor {
	return &Executor{
		logger: logger,
		stdout: stdout,
		stderr: stderr,
	}
}

// Execute runs "java [jvm args] -cp <proguard jar> proguard.ProGuard <args>".
// Output is copied line by line to the executor's streams and, when ctx
// carries a telemetry vertex, to the vertex as well.
func (e *Executor) Execute(ctx context.Context, req domain.ProcessRequest) error {
	tool, err := domain.FindTool(req.Plugins, domain.ToolArtifactID)
	if err != nil {
		return err
	}

	java, err := findJava(req.JavaHome, os.Environ())
	if err != nil {
		return err
	}

	args := make([]string, 0, len(req.JVMArgs)+3+len(req.Args))
	args = append(args, req.JVMArgs...)
	args = append(args, "-cp", tool.Path, domain.ToolMainClass)
	args = append(args, req.Args...)

	cmd := exec.CommandContext(ctx, java, args...) //nolint:gosec // arguments come from the project manifest
	if req.WorkingDir != "" {
		cmd.Dir = req.WorkingDir
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return errors.Join(zerr.Wrap(err, "failed to attach stdout"), domain.ErrLaunchFailed)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return errors.Join(zerr.Wrap(err, "failed to attach stderr"), domain.ErrLaunchFailed)
	}

	e.logger.Debug("running " + java + " " + strings.Join(args, " "))

	if err := cmd.Start(); err != nil {
		return errors.Join(zerr.With(zerr.Wrap(err, "failed to start java"), "java", java), domain.ErrLaunchFailed)
	}

	stdout, stderr := e.stdout, e.stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(stdout, v.Stdout())
		stderr = io.MultiWriter(stderr, v.Stderr())
	}

	// All output must be drained before Wait closes the pipes.
	var g errgroup.Group
	g.Go(func() error { return copyLines(stdout, stdoutPipe) })
	g.Go(func() error { return copyLines(stderr, stderrPipe) })
	copyErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(zerr.Wrap(err, "ProGuard was interrupted"), ctxErr)
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return errors.Join(zerr.With(zerr.Wrap(err, "ProGuard failed"), domain.ExitCodeKey, exitCode), domain.ErrExecutionFailed)
	}

	if copyErr != nil {
		return zerr.Wrap(copyErr, "failed to copy ProGuard output")
	}

	return nil
}

func copyLines(w io.Writer, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if _, err := io.WriteString(w, scanner.Text()+"\n"); err != nil {
			// Keep draining so the child never blocks on a full pipe.
			_, _ = io.Copy(io.Discard, r)
			return err
		}
	}
	return scanner.Err()
}

// findJava resolves the java launcher. An explicit javaHome must contain one;
// otherwise JAVA_HOME is tried before the PATH.
func findJava(javaHome string, env []string) (string, error) {
	if javaHome != "" {
		java := filepath.Join(javaHome, "bin", "java")
		if err := findExecutable(java); err != nil {
			return "", errors.Join(zerr.With(zerr.Wrap(err, "no java launcher in configured java home"), "java_home", javaHome), domain.ErrLaunchFailed)
		}
		return java, nil
	}

	if home := lookupEnv(env, "JAVA_HOME"); home != "" {
		java := filepath.Join(home, "bin", "java")
		if findExecutable(java) == nil {
			return java, nil
		}
	}

	java, err := lookPath("java", env)
	if err != nil {
		return "", errors.Join(zerr.Wrap(err, "java launcher not found"), domain.ErrLaunchFailed)
	}
	return java, nil
}

func lookupEnv(env []string, key string) string {
	for _, e := range env {
		if k, v, ok := strings.Cut(e, "="); ok && k == key {
			return v
		}
	}
	return ""
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	path := lookupEnv(env, "PATH")
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
