// Package config provides the manifest loader for nobs.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/nobs/internal/core/domain"
	"go.trai.ch/nobs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest looked up when no -c flag overrides it.
const DefaultFilename = "nobs.yaml"

// defaultBuildDir is used when the manifest does not name one.
const defaultBuildDir = "build_dir"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML manifest.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader reading the default manifest filename.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// SetFilename overrides the manifest filename, typically from the -c
// flag before any command runs.
func (l *Loader) SetFilename(name string) {
	if name != "" {
		l.Filename = name
	}
}

// Load reads the manifest from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Manifest, error) {
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var file Nobsfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	manifest := &domain.Manifest{
		Toolchain: domain.DefaultToolchain(),
		BuildDir:  defaultBuildDir,
	}
	if file.Compiler != "" {
		manifest.Toolchain.Compiler = file.Compiler
	}
	if file.Linker != "" {
		manifest.Toolchain.Linker = file.Linker
	}
	if file.BuildDir != "" {
		manifest.BuildDir = file.BuildDir
	}

	seen := make(map[string]bool, len(file.Targets))
	for _, dto := range file.Targets {
		target, err := buildTarget(cwd, dto)
		if err != nil {
			return nil, err
		}
		if seen[target.Name] {
			return nil, zerr.With(domain.ErrTargetAlreadyExists, "target", target.Name)
		}
		seen[target.Name] = true
		manifest.Targets = append(manifest.Targets, target)
	}

	return manifest, nil
}

func buildTarget(cwd string, dto TargetDTO) (domain.Target, error) {
	if dto.Name == "" {
		return domain.Target{}, zerr.New("target is missing a name")
	}

	targetType, err := parseTargetType(dto.Type)
	if err != nil {
		return domain.Target{}, zerr.With(err, "target", dto.Name)
	}

	// Every declared source must exist up front, before any job runs.
	for _, source := range dto.Sources {
		statPath := source
		if !filepath.IsAbs(statPath) {
			statPath = filepath.Join(cwd, statPath)
		}
		if _, err := os.Stat(statPath); err != nil {
			failure := zerr.With(domain.ErrSourceNotFound, "path", source)
			return domain.Target{}, zerr.With(failure, "target", dto.Name)
		}
	}

	flags := append([]string{}, dto.CompileFlags...)
	for _, dir := range dto.IncludeDirs {
		flags = append(flags, "-I"+dir)
	}

	return domain.Target{
		Name:         dto.Name,
		Type:         targetType,
		Sources:      append([]string{}, dto.Sources...),
		CompileFlags: flags,
	}, nil
}

func parseTargetType(s string) (domain.TargetType, error) {
	switch s {
	case "", string(domain.Executable):
		return domain.Executable, nil
	case string(domain.StaticLib):
		return domain.StaticLib, nil
	default:
		return "", zerr.With(zerr.New("unknown target type"), "type", s)
	}
}
