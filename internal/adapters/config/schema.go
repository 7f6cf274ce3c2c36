package config

// Nobsfile represents the structure of the nobs.yaml manifest.
type Nobsfile struct {
	Version  string      `yaml:"version"`
	Compiler string      `yaml:"compiler"`
	Linker   string      `yaml:"linker"`
	BuildDir string      `yaml:"build_dir"`
	Targets  []TargetDTO `yaml:"targets"`
}

// TargetDTO represents one target declaration in the manifest. Targets
// build in declaration order.
type TargetDTO struct {
	Name string `yaml:"name"`
	// Type is "executable" (default) or "static_lib".
	Type    string   `yaml:"type"`
	Sources []string `yaml:"sources"`
	// CompileFlags are joined with single spaces and re-split on
	// whitespace when the compiler argv is built; a flag containing an
	// embedded space will be mis-tokenized.
	CompileFlags []string `yaml:"compile_flags"`
	// IncludeDirs expand to -I<dir> flags after CompileFlags.
	IncludeDirs []string `yaml:"include_dirs"`
}
