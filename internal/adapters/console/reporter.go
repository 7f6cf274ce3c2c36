// Package console implements the progress reporter writing styled lines
// to the terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"go.trai.ch/nobs/internal/core/domain"
	"go.trai.ch/nobs/internal/core/ports"
	"go.trai.ch/nobs/internal/ui/style"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter on a plain writer.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to stdout.
func New() *Reporter {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Reporter writing to the given writer. Used by
// tests.
func NewWithWriter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// BuildStarted announces a target build.
func (r *Reporter) BuildStarted(target string, jobs, parallel int) {
	msg := fmt.Sprintf("Running build of %s with %d jobs (max %d parallel)...", target, jobs, parallel)
	fmt.Fprintln(r.w, style.Success.Render(msg))
}

// NothingToBuild announces that every source of the target was fresh.
func (r *Reporter) NothingToBuild(target string) {
	msg := fmt.Sprintf("Nothing to build for target %s.", target)
	fmt.Fprintln(r.w, style.Success.Render(msg))
}

// JobStarted prints one progress line for a job about to start.
func (r *Reporter) JobStarted(percent, ordinal, total int, kind domain.Kind, command string) {
	line := fmt.Sprintf("[%3d%%] %d/%d %s %s", percent, ordinal, total, kind, command)
	if kind == domain.KindLink {
		fmt.Fprintln(r.w, style.Success.Render(line))
		return
	}
	fmt.Fprintln(r.w, style.Faint.Render(line))
}

// LinkCompleted announces a finished link job.
func (r *Reporter) LinkCompleted(target string) {
	msg := fmt.Sprintf("Linking of %s completed successfully.", target)
	fmt.Fprintln(r.w, style.Success.Render(msg))
}

// BuildFailed announces the fail-fast abort.
func (r *Reporter) BuildFailed(exitCode int) {
	msg := fmt.Sprintf("Error: command failed with code %d. Stopping build.", exitCode)
	fmt.Fprintln(r.w, style.Failure.Render(msg))
}
