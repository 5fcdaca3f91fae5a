package domain

import "time"

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// RunLog is the recorded output of the most recent ProGuard run.
type RunLog struct {
	Name string

	// Output holds the process output in the order it was written.
	Output []byte

	Started   time.Time
	Completed time.Time

	Error    string
	Canceled bool
}

// Finished reports whether the run reached completion.
func (r *RunLog) Finished() bool {
	return !r.Completed.IsZero()
}

// Failed reports whether the run ended with an error or was interrupted.
func (r *RunLog) Failed() bool {
	return r.Error != "" || r.Canceled
}

// Duration returns the wall time of a finished run, zero otherwise.
func (r *RunLog) Duration() time.Duration {
	if !r.Finished() {
		return 0
	}
	return r.Completed.Sub(r.Started)
}
