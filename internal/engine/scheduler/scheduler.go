// Package scheduler executes a target's job list with bounded
// parallelism and fail-fast abort.
package scheduler

import (
	"context"
	"strings"
	"time"

	"go.trai.ch/nobs/internal/core/domain"
	"go.trai.ch/nobs/internal/core/ports"
	"go.trai.ch/zerr"
)

// defaultPollInterval is the sleep between polling rounds while children
// are in flight.
const defaultPollInterval = 10 * time.Millisecond

// Scheduler drains a BuildState's job list: it launches pending jobs
// whose dependencies have completed, keeps at most the configured number
// of children in flight, and aborts on the first non-zero exit.
type Scheduler struct {
	launcher     ports.Launcher
	meta         ports.MetadataStore
	reporter     ports.Reporter
	tracer       ports.Tracer
	logger       ports.Logger
	pollInterval time.Duration
}

// NewScheduler creates a new Scheduler.
func NewScheduler(
	launcher ports.Launcher,
	meta ports.MetadataStore,
	reporter ports.Reporter,
	tracer ports.Tracer,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		launcher:     launcher,
		meta:         meta,
		reporter:     reporter,
		tracer:       tracer,
		logger:       logger,
		pollInterval: defaultPollInterval,
	}
}

// SetPollInterval overrides the sleep between polling rounds.
func (s *Scheduler) SetPollInterval(d time.Duration) {
	s.pollInterval = d
}

// Run executes the state's jobs with at most parallel children in
// flight. Jobs start in creation order as their dependencies complete.
// A compile job that exits 0 has its record persisted before anything
// else happens; a job that exits non-zero stops the build and surfaces
// as *domain.JobError carrying the child's exit code. Already-running
// siblings are neither killed nor awaited on abort.
func (s *Scheduler) Run(ctx context.Context, state *domain.BuildState, parallel int) error {
	total := len(state.Jobs)
	if total == 0 {
		s.reporter.NothingToBuild(state.Target.Name)
		return nil
	}
	if parallel < 1 {
		parallel = 1
	}

	s.reporter.BuildStarted(state.Target.Name, total, parallel)

	run := &runState{
		s:        s,
		ctx:      ctx,
		state:    state,
		parallel: parallel,
	}

	for run.completed < total {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "build aborted")
		}

		if err := run.poll(); err != nil {
			return err
		}
		if err := run.launch(); err != nil {
			return err
		}

		if len(run.inflight) == 0 {
			if run.completed < total {
				// Every provider of the remaining deps has completed or we
				// would have launched something. Reaching this means the
				// dependency indices are wrong.
				return zerr.With(zerr.With(zerr.New("no runnable job left"), "completed", run.completed), "total", total)
			}
			break
		}

		time.Sleep(s.pollInterval)
	}

	return nil
}

// inflight pairs a running process with its job index and span.
type inflight struct {
	index int
	proc  ports.Process
	span  ports.Span
}

type runState struct {
	s         *Scheduler
	ctx       context.Context
	state     *domain.BuildState
	parallel  int
	inflight  []inflight
	completed int
}

// poll sweeps the in-flight set once without blocking and settles every
// child that has exited.
func (r *runState) poll() error {
	remaining := r.inflight[:0]
	for _, in := range r.inflight {
		job := r.state.Jobs[in.index]

		code, done, err := in.proc.TryWait()
		if err != nil {
			in.span.RecordError(err)
			in.span.End()
			return zerr.Wrap(err, "failed to wait on job process")
		}
		if !done {
			remaining = append(remaining, in)
			continue
		}

		job.Exited = true
		job.ExitCode = code

		if code != 0 {
			job.Status = domain.StatusFailed
			r.s.reporter.BuildFailed(code)

			jobErr := &domain.JobError{
				ExitCode: code,
				Command:  strings.Join(job.Step.Argv(r.state.Toolchain), " "),
			}
			in.span.RecordError(jobErr)
			in.span.End()
			return jobErr
		}

		job.Status = domain.StatusCompleted
		r.completed++

		switch step := job.Step.(type) {
		case domain.CompileStep:
			if err := r.s.meta.Store(step.Record); err != nil {
				in.span.RecordError(err)
				in.span.End()
				return err
			}
		case domain.LinkStep:
			r.s.reporter.LinkCompleted(r.state.Target.Name)
		}
		in.span.End()
	}
	r.inflight = remaining
	return nil
}

// launch starts eligible pending jobs in creation order until the
// parallelism bound is reached or nothing else is runnable.
func (r *runState) launch() error {
	for len(r.inflight) < r.parallel {
		index := r.nextRunnable()
		if index < 0 {
			return nil
		}
		job := r.state.Jobs[index]

		argv := job.Step.Argv(r.state.Toolchain)
		command := strings.Join(argv, " ")

		total := len(r.state.Jobs)
		started := r.completed + len(r.inflight)
		r.s.reporter.JobStarted((started+1)*100/total, started, total, job.Step.Kind(), command)

		_, span := r.s.tracer.Start(r.ctx, command)

		proc, err := r.s.launcher.Spawn(argv)
		if err != nil {
			job.Status = domain.StatusFailed
			span.RecordError(err)
			span.End()
			r.s.logger.Error(err)
			return err
		}

		job.Status = domain.StatusRunning
		r.inflight = append(r.inflight, inflight{index: index, proc: proc, span: span})
	}
	return nil
}

// nextRunnable returns the index of the first pending job whose
// dependencies have all completed, or -1.
func (r *runState) nextRunnable() int {
	for i, job := range r.state.Jobs {
		if job.Status != domain.StatusPending {
			continue
		}
		if r.depsCompleted(job) {
			return i
		}
	}
	return -1
}

func (r *runState) depsCompleted(job *domain.Job) bool {
	for _, dep := range job.DependsOn {
		if r.state.Jobs[dep].Status != domain.StatusCompleted {
			return false
		}
	}
	return true
}
