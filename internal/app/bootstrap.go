package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"go.trai.ch/nobs/internal/core/domain"
	"go.trai.ch/zerr"
)

// execFn replaces the current process image. Swapped out in tests.
type execFn func(binary string, argv []string, env []string) error

// SelfRebuild recompiles the orchestrator from its own script source and,
// if anything was actually out of date, replaces the running process with
// the fresh binary so the caller continues under the new code. The
// synthetic target builds beside its source rather than under the build
// directory, and its object files are removed after linking; the side-car
// records stay so the next invocation sees a warm cache.
func (a *App) SelfRebuild(ctx context.Context, scriptFile string, argv []string) error {
	return a.selfRebuild(ctx, scriptFile, argv, syscall.Exec)
}

func (a *App) selfRebuild(ctx context.Context, scriptFile string, argv []string, exec execFn) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	target := domain.Target{
		Name:    strings.TrimSuffix(filepath.Base(scriptFile), filepath.Ext(scriptFile)),
		Type:    domain.Executable,
		Sources: []string{scriptFile},
	}
	bctx := domain.BuildContext{ProjectDir: cwd, ParallelJobs: 1}

	state, err := a.builder.Build(ctx, bctx, domain.DefaultToolchain(), target, false)
	if err != nil {
		return zerr.Wrap(err, "failed to build job graph")
	}

	if !state.NeedsLinking {
		a.logger.Info("script unchanged, nothing to rebuild")
		return nil
	}

	if err := a.scheduler.Run(ctx, state, bctx.Parallelism()); err != nil {
		return err
	}

	if err := a.workspace.RemoveObjects(bctx, target, false); err != nil {
		return err
	}

	binary, err := a.workspace.TargetPath(bctx, target.Name, false)
	if err != nil {
		return err
	}
	if !filepath.IsAbs(binary) {
		binary = "./" + binary
	}

	a.logger.Info("restarting under the rebuilt binary")
	if err := exec(binary, argv, os.Environ()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to exec rebuilt binary"), "binary", binary)
	}
	return nil
}
