package domain

// BuildContext carries the per-invocation build settings. It is threaded
// explicitly through the builder and scheduler instead of living in
// process-wide state, and is not shared across builds.
type BuildContext struct {
	// BuildDir is the root under which object files and their .meta
	// side-cars are placed when build-directory mode is enabled.
	BuildDir string
	// ProjectDir is the project root that source paths are made relative
	// to when deriving object paths.
	ProjectDir string
	// ParallelJobs bounds the number of simultaneously running jobs.
	ParallelJobs int
}

// Parallelism returns ParallelJobs clamped to at least 1.
func (c BuildContext) Parallelism() int {
	if c.ParallelJobs < 1 {
		return 1
	}
	return c.ParallelJobs
}
