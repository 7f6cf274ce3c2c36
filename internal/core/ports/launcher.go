// Package ports defines the core interfaces for the application.
package ports

// Process is a handle to one spawned OS process. It abstracts the
// fork/exec/waitpid polling loop so the scheduler stays platform
// independent.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Process interface {
	// TryWait polls the process without blocking. done is false while the
	// process is still running; once it is true, code holds the exit
	// code. err reports wait-level failures, not non-zero exits.
	TryWait() (code int, done bool, err error)

	// Wait blocks until the process exits and returns its exit code.
	Wait() (int, error)
}

// Launcher starts external processes for build jobs.
type Launcher interface {
	// Spawn starts argv[0] with the remaining arguments. The child
	// inherits the orchestrator's stdout and stderr. A launch-level
	// failure (binary missing, fork failure) is returned as
	// domain.ErrLaunchFailed and aborts the build.
	Spawn(argv []string) (Process, error)
}
