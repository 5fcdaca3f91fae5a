package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ToolArtifactID identifies the ProGuard artifact among the plugin artifacts.
	ToolArtifactID = "proguard-base"

	// ToolMainClass is the entry point of the ProGuard artifact.
	ToolMainClass = "proguard.ProGuard"
)

// Artifact is a resolved dependency or plugin archive.
type Artifact struct {
	GroupID    string
	ArtifactID string
	Version    string

	// Path is the absolute location of the artifact on disk.
	Path string
}

// Coordinates returns the artifact in "group:artifact:version" notation.
func (a Artifact) Coordinates() string {
	return strings.Join([]string{a.GroupID, a.ArtifactID, a.Version}, ":")
}

// ArtifactRef is a declared artifact before resolution.
// At least one of Coordinates or Path is set; Path may be a glob.
type ArtifactRef struct {
	Coordinates string
	Path        string
}

// ParseCoordinates parses "group:artifact:version" notation.
func ParseCoordinates(s string) (Artifact, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Artifact{}, zerr.With(zerr.Wrap(ErrInvalidConfig, "malformed coordinates"), "coordinates", s)
	}
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return Artifact{}, zerr.With(zerr.Wrap(ErrInvalidConfig, "empty coordinate segment"), "coordinates", s)
		}
	}
	return Artifact{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}, nil
}

// ArtifactFromFile derives the artifact id and version from an archive file name
// such as "proguard-base-7.4.2.jar".
func ArtifactFromFile(path string) Artifact {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	a := Artifact{ArtifactID: name, Path: path}
	for i := 1; i < len(name)-1; i++ {
		if name[i] == '-' && name[i+1] >= '0' && name[i+1] <= '9' {
			a.ArtifactID = name[:i]
			a.Version = name[i+1:]
			break
		}
	}
	return a
}

// FindTool returns the first plugin artifact whose artifact id matches id.
func FindTool(plugins []Artifact, id string) (Artifact, error) {
	for _, p := range plugins {
		if p.ArtifactID == id {
			return p, nil
		}
	}
	err := zerr.With(zerr.Wrap(ErrToolNotFound, "no matching plugin artifact"), "artifact_id", id)
	return Artifact{}, zerr.With(err, "plugins", len(plugins))
}
