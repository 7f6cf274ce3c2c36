// Package app implements the application layer for nobs.
package app

import (
	"context"
	"os"

	"go.trai.ch/nobs/internal/core/domain"
	"go.trai.ch/nobs/internal/core/ports"
	"go.trai.ch/nobs/internal/engine/builder"
	"go.trai.ch/nobs/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// RunOptions carries the per-invocation knobs of a build.
type RunOptions struct {
	// Jobs bounds how many compile or link processes run at once.
	// Values below 1 are clamped to 1.
	Jobs int
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	builder      *builder.Builder
	scheduler    *scheduler.Scheduler
	workspace    ports.Workspace
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	b *builder.Builder,
	sched *scheduler.Scheduler,
	workspace ports.Workspace,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		builder:      b,
		scheduler:    sched,
		workspace:    workspace,
		logger:       logger,
	}
}

// Run builds the named targets in the order given, or every manifest
// target in declaration order when no names are passed. Targets build
// one after another; parallelism applies within a target's job list.
func (a *App) Run(ctx context.Context, targetNames []string, opts RunOptions) error {
	manifest, cwd, err := a.load()
	if err != nil {
		return err
	}

	targets, err := selectTargets(manifest, targetNames)
	if err != nil {
		return err
	}

	bctx := domain.BuildContext{
		BuildDir:     manifest.BuildDir,
		ProjectDir:   cwd,
		ParallelJobs: opts.Jobs,
	}

	for _, target := range targets {
		state, err := a.builder.Build(ctx, bctx, manifest.Toolchain, target, true)
		if err != nil {
			return zerr.Wrap(err, "failed to build job graph")
		}
		if err := a.scheduler.Run(ctx, state, bctx.Parallelism()); err != nil {
			return err
		}
	}

	return nil
}

// Clean deletes the build directory.
func (a *App) Clean(_ context.Context) error {
	manifest, cwd, err := a.load()
	if err != nil {
		return err
	}

	bctx := domain.BuildContext{BuildDir: manifest.BuildDir, ProjectDir: cwd}
	if err := a.workspace.Clean(bctx); err != nil {
		return err
	}

	a.logger.Info("build directory removed")
	return nil
}

func (a *App) load() (*domain.Manifest, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to determine working directory")
	}

	manifest, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to load configuration")
	}
	return manifest, cwd, nil
}

func selectTargets(manifest *domain.Manifest, names []string) ([]domain.Target, error) {
	if len(names) == 0 {
		return manifest.Targets, nil
	}

	targets := make([]domain.Target, 0, len(names))
	for _, name := range names {
		target, err := manifest.TargetByName(name)
		if err != nil {
			return nil, zerr.With(err, "target", name)
		}
		targets = append(targets, target)
	}
	return targets, nil
}
