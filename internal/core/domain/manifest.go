package domain

// Project identifies the project a manifest belongs to.
type Project struct {
	Name string

	// BaseDir is the directory containing the manifest.
	BaseDir string
}

// JVM configures the java launcher used to run ProGuard.
type JVM struct {
	JavaHome string
	Args     []string
}

// Manifest is the fully loaded project description.
type Manifest struct {
	Project      Project
	Config       Configuration
	Dependencies []ArtifactRef
	Plugins      []ArtifactRef

	// Repository is the root of the local Maven repository.
	Repository string

	JVM JVM
}
