package domain

import "slices"

const (
	// PackagingJar is the packaging type of a plain library or application archive.
	PackagingJar = "jar"
	// PackagingWar is the packaging type of a web application.
	PackagingWar = "war"

	// WarClassesDir is the default input of a war project.
	WarClassesDir = "classes"
)

// Configuration holds the build-time parameters of a single ProGuard invocation.
// It is treated as immutable once loaded.
type Configuration struct {
	// Skip disables the step entirely.
	Skip bool

	// ConfigFile is an optional ProGuard options file, included only if it exists.
	ConfigFile string

	// TargetDirectory holds the input and output artifacts.
	TargetDirectory string

	// Injar and Outjar are artifact names relative to TargetDirectory.
	// Either may name a file or a directory.
	Injar  string
	Outjar string

	// Filters are appended to the corresponding path as "(filter)" when non-empty.
	InFilter         string
	OutFilter        string
	DependencyFilter string

	// IncludeDependency adds one argument pair per resolved dependency artifact.
	IncludeDependency bool

	// IncludeDependencyInjar passes dependencies as -injars instead of -libraryjars.
	IncludeDependencyInjar bool

	// Libs are extra -libraryjars entries, passed verbatim.
	Libs []string

	// Options replaces the default option set when non-empty.
	Options []string

	// Packaging and FinalName drive the default Injar/Outjar names.
	Packaging string
	FinalName string
}

// WithDefaults returns a copy of the configuration with the packaging-based
// artifact names filled in. The receiver is left untouched.
func (c Configuration) WithDefaults() Configuration {
	out := c
	out.Libs = slices.Clone(c.Libs)
	out.Options = slices.Clone(c.Options)

	switch c.Packaging {
	case PackagingJar:
		if out.Injar == "" {
			out.Injar = c.FinalName + ".jar"
		}
	case PackagingWar:
		if out.Injar == "" {
			out.Injar = WarClassesDir
		}
	}

	if out.Outjar == "" {
		out.Outjar = out.Injar
	}
	return out
}

// DefaultOptions returns the option set used when no explicit options are configured.
func DefaultOptions() []string {
	return []string{
		"-dontoptimize",
		"-keepattributes *Annotation*",
		"-keepattributes Signature",
		"-keepattributes InnerClasses",
		"-keepclassmembers class * { @**.* *; }",
		"-keep public class * { public protected *; }",
	}
}
