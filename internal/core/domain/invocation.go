package domain

// SkipReason explains why an invocation will not run.
type SkipReason int

const (
	// SkipNone means the invocation should be executed.
	SkipNone SkipReason = iota
	// SkipDisabled means the step was disabled through configuration.
	SkipDisabled
	// SkipNoInput means no input artifact is configured or derivable.
	SkipNoInput
)

// String returns a human readable description of the skip reason.
func (r SkipReason) String() string {
	switch r {
	case SkipDisabled:
		return "disabled"
	case SkipNoInput:
		return "no input configured"
	default:
		return "none"
	}
}

// Invocation is the result of building a ProGuard command line.
type Invocation struct {
	// Args is the ordered argument sequence passed to ProGuard.
	Args []string

	// Skip is SkipNone when Args should be executed.
	Skip SkipReason

	// InputPath is the relocated input artifact (the side-path).
	InputPath string

	// OutputPath is the artifact ProGuard will write.
	OutputPath string
}

// Runnable reports whether the invocation should be executed.
func (i *Invocation) Runnable() bool {
	return i != nil && i.Skip == SkipNone
}

// ProcessRequest describes a single ProGuard process launch.
type ProcessRequest struct {
	// Plugins are the tool artifacts available to the step.
	Plugins []Artifact

	// Args is the ProGuard argument sequence.
	Args []string

	// JavaHome overrides the JAVA_HOME environment variable when set.
	JavaHome string

	// JVMArgs are passed to the java launcher before the classpath.
	JVMArgs []string

	// WorkingDir is the directory the process is started in.
	WorkingDir string
}
