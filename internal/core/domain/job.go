package domain

import "strings"

// Status is the lifecycle state of a Job. Transitions are monotonic:
// Pending -> Running -> Completed or Failed. A job never restarts within
// one build run.
type Status string

const (
	// StatusPending indicates the job has not been started yet.
	StatusPending Status = "Pending"
	// StatusRunning indicates the job's process is in flight.
	StatusRunning Status = "Running"
	// StatusCompleted indicates the job's process exited with code 0.
	StatusCompleted Status = "Completed"
	// StatusFailed indicates the job's process exited non-zero.
	StatusFailed Status = "Failed"
)

// Kind discriminates the two job variants for argv construction and
// progress reporting.
type Kind string

const (
	// KindCompile compiles one source file into an object file.
	KindCompile Kind = "Compiling"
	// KindLink links a target's object files into its final artifact.
	KindLink Kind = "Linking"
)

// Step is the work a Job carries: compiling one source or linking one
// target. It is a closed sum; CompileStep and LinkStep are the only
// variants.
type Step interface {
	// Kind returns the variant discriminator.
	Kind() Kind
	// Argv builds the full process argument vector for the step.
	Argv(tc Toolchain) []string
}

// CompileStep compiles Record.SourceFile into Record.ObjectFile.
type CompileStep struct {
	Record CompileRecord
}

// Kind returns KindCompile.
func (s CompileStep) Kind() Kind { return KindCompile }

// Argv returns [compiler, flags..., "-c", "-o", object, source]. The
// flattened flag string is split on whitespace; no quoting is supported.
func (s CompileStep) Argv(tc Toolchain) []string {
	argv := []string{tc.Compiler}
	argv = append(argv, strings.Fields(s.Record.CompileFlags)...)
	argv = append(argv, "-c", "-o", s.Record.ObjectFile, s.Record.SourceFile)
	return argv
}

// LinkStep links ObjectFiles into TargetFile. ObjectFiles always covers
// every source of the target, not just the recompiled ones.
type LinkStep struct {
	ObjectFiles []string
	TargetFile  string
	// LinkFlags is a pass-through point that is currently always empty;
	// the manifest has no way to populate it yet.
	LinkFlags string
}

// Kind returns KindLink.
func (s LinkStep) Kind() Kind { return KindLink }

// Argv returns [linker, "-o", target, objects...].
func (s LinkStep) Argv(tc Toolchain) []string {
	argv := []string{tc.Linker, "-o", s.TargetFile}
	argv = append(argv, strings.Fields(s.LinkFlags)...)
	argv = append(argv, s.ObjectFiles...)
	return argv
}

// Job is one schedulable unit of work. Jobs are created once per build
// invocation by the builder and mutated in place by the scheduler.
type Job struct {
	Step     Step
	Status   Status
	ExitCode int
	Exited   bool
	// DependsOn holds indices of jobs in the same BuildState that must
	// reach StatusCompleted before this job may start. Empty for compile
	// jobs; for a link job, the indices of every sibling compile job.
	DependsOn []int
}

// BuildState is the ordered job list for one target within one build
// invocation.
type BuildState struct {
	Target    Target
	Toolchain Toolchain
	Jobs      []*Job
	// NeedsLinking is true iff at least one compile job was scheduled,
	// i.e. at least one source's cache check failed. The self-rebuild
	// bootstrap reads it to decide whether to restart.
	NeedsLinking bool
}

// CompilationFinished reports whether every compile job has completed.
func (s *BuildState) CompilationFinished() bool {
	for _, j := range s.Jobs {
		if j.Step.Kind() == KindCompile && j.Status != StatusCompleted {
			return false
		}
	}
	return true
}
