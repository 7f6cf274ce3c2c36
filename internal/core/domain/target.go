// Package domain contains the core domain models for the build orchestrator.
package domain

import "strings"

// TargetType discriminates what kind of artifact a target produces.
type TargetType string

const (
	// Executable is a linked program.
	Executable TargetType = "executable"
	// StaticLib is a static library archive.
	StaticLib TargetType = "static_lib"
)

// Target is a named buildable unit: an ordered list of source files plus
// the compile flags they share. Targets are declared by the manifest and
// only read by the build core.
type Target struct {
	Name         string
	Type         TargetType
	Sources      []string
	CompileFlags []string
}

// FlattenedFlags joins the compile flags with single spaces in declaration
// order. The joined string is what gets persisted in a CompileRecord and
// what is later re-tokenized by whitespace when building the compiler
// argv. Flags containing embedded spaces are therefore mis-tokenized;
// quoting is not supported.
func (t Target) FlattenedFlags() string {
	return strings.Join(t.CompileFlags, " ")
}

// Toolchain names the external compiler and linker binaries.
type Toolchain struct {
	Compiler string
	Linker   string
}

// DefaultToolchain returns the g++ toolchain used when the manifest does
// not override it.
func DefaultToolchain() Toolchain {
	return Toolchain{Compiler: "g++", Linker: "g++"}
}

// Manifest is the loaded build description: toolchain settings, the build
// directory root, and the ordered target list. Build order is declaration
// order.
type Manifest struct {
	Toolchain Toolchain
	BuildDir  string
	Targets   []Target
}

// TargetByName returns the target with the given name.
func (m *Manifest) TargetByName(name string) (Target, error) {
	for _, t := range m.Targets {
		if t.Name == name {
			return t, nil
		}
	}
	return Target{}, ErrTargetNotFound
}
