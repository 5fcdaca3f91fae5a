package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrMissingInput is returned when the resolved input artifact does not exist.
	ErrMissingInput = zerr.New("input artifact not found")

	// ErrCleanupFailed is returned when a stale side-path or output path cannot be deleted.
	ErrCleanupFailed = zerr.New("failed to delete existing path")

	// ErrRelocationFailed is returned when the input artifact cannot be renamed to its side-path.
	ErrRelocationFailed = zerr.New("failed to relocate input artifact")

	// ErrToolNotFound is returned when the ProGuard artifact is not among the plugin artifacts.
	ErrToolNotFound = zerr.New("proguard not found")

	// ErrLaunchFailed is returned when the ProGuard process cannot be started.
	ErrLaunchFailed = zerr.New("failed to launch proguard")

	// ErrExecutionFailed is returned when ProGuard exits with a non-zero code.
	ErrExecutionFailed = zerr.New("proguard failed")

	// ErrConfigNotFound is returned when the manifest file does not exist.
	ErrConfigNotFound = zerr.New("configuration file not found")

	// ErrConfigParseFailed is returned when the manifest file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrInvalidConfig is returned when the manifest contains invalid values.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrArtifactNotFound is returned when a declared dependency or plugin artifact cannot be located.
	ErrArtifactNotFound = zerr.New("artifact not found")

	// ErrStoreReadFailed is returned when the run record store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read run records")

	// ErrStoreWriteFailed is returned when the run record store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write run records")

	// ErrJournalReadFailed is returned when the run journal cannot be read.
	ErrJournalReadFailed = zerr.New("failed to read run journal")
)

// ExitCodeKey is the metadata key carrying the ProGuard exit code.
const ExitCodeKey = "exit_code"

// ExitCode extracts the process exit code attached to an ErrExecutionFailed error.
func ExitCode(err error) (int, bool) {
	if !errors.Is(err, ErrExecutionFailed) {
		return 0, false
	}
	for _, e := range flatten(err) {
		z, ok := e.(*zerr.Error) //nolint:errorlint // each node is inspected individually
		if !ok {
			continue
		}
		if code, ok := z.Metadata()[ExitCodeKey].(int); ok {
			return code, true
		}
	}
	return 0, false
}

// flatten walks the error tree depth-first, including joined errors.
func flatten(err error) []error {
	if err == nil {
		return nil
	}
	out := []error{err}
	switch u := err.(type) { //nolint:errorlint // walking the tree explicitly
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			out = append(out, flatten(e)...)
		}
	case interface{ Unwrap() error }:
		out = append(out, flatten(u.Unwrap())...)
	}
	return out
}
