package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/shrink/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// effectiveConfig is the YAML view printed by "shrink config".
type effectiveConfig struct {
	Project struct {
		Name      string `yaml:"name"`
		BaseDir   string `yaml:"baseDir"`
		Packaging string `yaml:"packaging"`
		FinalName string `yaml:"finalName"`
	} `yaml:"project"`
	ProGuard struct {
		Skip                   bool     `yaml:"skip"`
		ConfigFile             string   `yaml:"configFile"`
		TargetDirectory        string   `yaml:"targetDirectory"`
		Injar                  string   `yaml:"injar"`
		Outjar                 string   `yaml:"outjar"`
		InFilter               string   `yaml:"inFilter"`
		OutFilter              string   `yaml:"outFilter"`
		DependencyFilter       string   `yaml:"dependencyFilter"`
		IncludeDependency      bool     `yaml:"includeDependency"`
		IncludeDependencyInjar bool     `yaml:"includeDependencyInjar"`
		Libs                   []string `yaml:"libs,omitempty"`
		Options                []string `yaml:"options"`
	} `yaml:"proguard"`
	Dependencies []artifactRef `yaml:"dependencies,omitempty"`
	Plugins      []artifactRef `yaml:"plugins,omitempty"`
	Repository   string        `yaml:"repository"`
	JVM          struct {
		JavaHome string   `yaml:"javaHome,omitempty"`
		Args     []string `yaml:"args,omitempty"`
	} `yaml:"jvm,omitempty"`
}

type artifactRef struct {
	Coordinates string `yaml:"coordinates,omitempty"`
	Path        string `yaml:"path,omitempty"`
}

func newEffectiveConfig(m *domain.Manifest) effectiveConfig {
	var out effectiveConfig
	out.Project.Name = m.Project.Name
	out.Project.BaseDir = m.Project.BaseDir
	out.Project.Packaging = m.Config.Packaging
	out.Project.FinalName = m.Config.FinalName

	cfg := m.Config
	out.ProGuard.Skip = cfg.Skip
	out.ProGuard.ConfigFile = cfg.ConfigFile
	out.ProGuard.TargetDirectory = cfg.TargetDirectory
	out.ProGuard.Injar = cfg.Injar
	out.ProGuard.Outjar = cfg.Outjar
	out.ProGuard.InFilter = cfg.InFilter
	out.ProGuard.OutFilter = cfg.OutFilter
	out.ProGuard.DependencyFilter = cfg.DependencyFilter
	out.ProGuard.IncludeDependency = cfg.IncludeDependency
	out.ProGuard.IncludeDependencyInjar = cfg.IncludeDependencyInjar
	out.ProGuard.Libs = cfg.Libs
	out.ProGuard.Options = cfg.Options
	if len(out.ProGuard.Options) == 0 {
		out.ProGuard.Options = domain.DefaultOptions()
	}

	for _, ref := range m.Dependencies {
		out.Dependencies = append(out.Dependencies, artifactRef(ref))
	}
	for _, ref := range m.Plugins {
		out.Plugins = append(out.Plugins, artifactRef(ref))
	}
	out.Repository = m.Repository
	out.JVM.JavaHome = m.JVM.JavaHome
	out.JVM.Args = m.JVM.Args
	return out
}

func (c *CLI) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := c.app.Effective(c.GetConfigPath())
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(newEffectiveConfig(m)); err != nil {
				return zerr.Wrap(err, "failed to render configuration")
			}
			return enc.Close()
		},
	}
}
