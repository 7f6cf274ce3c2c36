package ports

import "go.trai.ch/nobs/internal/core/domain"

// Reporter receives human-facing build progress events. The scheduler
// drives it; implementations decide presentation.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// BuildStarted announces a target build with its job count and the
	// parallelism bound.
	BuildStarted(target string, jobs, parallel int)

	// NothingToBuild announces that every source of the target was fresh.
	NothingToBuild(target string)

	// JobStarted announces a job about to start. percent follows the
	// monotone formula (completed + inflight + 1) * 100 / total; ordinal
	// is completed + inflight.
	JobStarted(percent, ordinal, total int, kind domain.Kind, command string)

	// LinkCompleted announces that the target's link job finished.
	LinkCompleted(target string)

	// BuildFailed announces the fail-fast abort with the child's exit
	// code.
	BuildFailed(exitCode int)
}
