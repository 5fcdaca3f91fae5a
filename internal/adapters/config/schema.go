package config

// Manifest represents the structure of the shrink.yaml configuration file.
type Manifest struct {
	Project      ProjectDTO    `yaml:"project"`
	ProGuard     ProGuardDTO   `yaml:"proguard"`
	Dependencies []ArtifactDTO `yaml:"dependencies"`
	Plugins      []ArtifactDTO `yaml:"plugins"`
	Repository   string        `yaml:"repository"`
	JVM          JVMDTO        `yaml:"jvm"`
}

// ProjectDTO describes the project being shrunk.
type ProjectDTO struct {
	Name           string `yaml:"name"`
	Packaging      string `yaml:"packaging"`
	FinalName      string `yaml:"finalName"`
	BuildDirectory string `yaml:"buildDirectory"`
}

// ProGuardDTO holds the step parameters. Pointer fields distinguish an
// explicit zero value from an absent key.
type ProGuardDTO struct {
	Skip                   *bool    `yaml:"skip"`
	ConfigFile             *string  `yaml:"configFile"`
	Injar                  string   `yaml:"injar"`
	Outjar                 string   `yaml:"outjar"`
	InFilter               *string  `yaml:"inFilter"`
	OutFilter              *string  `yaml:"outFilter"`
	DependencyFilter       *string  `yaml:"dependencyFilter"`
	IncludeDependency      *bool    `yaml:"includeDependency"`
	IncludeDependencyInjar *bool    `yaml:"includeDependencyInjar"`
	Libs                   []string `yaml:"libs"`
	Options                []string `yaml:"options"`
}

// ArtifactDTO references an artifact by coordinates, by path, or both.
type ArtifactDTO struct {
	Coordinates string `yaml:"coordinates"`
	Path        string `yaml:"path"`
}

// JVMDTO configures the Java runtime used to run ProGuard.
type JVMDTO struct {
	JavaHome string   `yaml:"javaHome"`
	Args     []string `yaml:"args"`
}
