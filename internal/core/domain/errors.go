package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrMetadataCorrupt is returned when a .meta side-car exists but is
	// missing a line or carries a non-numeric timestamp. Fatal.
	ErrMetadataCorrupt = zerr.New("metadata record corrupt")

	// ErrFilesystem is returned when a directory cannot be created or a
	// build artifact cannot be written. Fatal.
	ErrFilesystem = zerr.New("filesystem operation failed")

	// ErrLaunchFailed is returned when a job's process could not be
	// started at all, as opposed to exiting non-zero. Fatal.
	ErrLaunchFailed = zerr.New("failed to start process")

	// ErrSourceNotFound is returned when the manifest lists a source file
	// that does not exist.
	ErrSourceNotFound = zerr.New("source file does not exist")

	// ErrTargetNotFound is returned when a requested target is not
	// declared in the manifest.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrTargetAlreadyExists is returned when the manifest declares two
	// targets with the same name.
	ErrTargetAlreadyExists = zerr.New("target already exists")
)

// JobError reports the first job whose process exited non-zero. The
// orchestrator's own exit code must equal ExitCode; no retry is attempted
// anywhere.
type JobError struct {
	ExitCode int
	Command  string
}

// Error implements the error interface.
func (e *JobError) Error() string {
	return fmt.Sprintf("command failed with code %d: %s", e.ExitCode, e.Command)
}
