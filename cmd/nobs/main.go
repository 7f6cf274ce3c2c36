// Package main is the entry point for the nobs build tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/nobs/cmd/nobs/commands"
	"go.trai.ch/nobs/internal/app"
	"go.trai.ch/nobs/internal/core/domain"
	_ "go.trai.ch/nobs/internal/wiring"
)

// launchFailureExitCode is returned when a job's process could not be
// started at all, mirroring the shell convention for exec failures.
const launchFailureExitCode = 255

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer func() { _ = components.Tracer.Close() }()

	// 2. Interface - CLI
	cli := commands.New(components.App, func(filename string) {
		if setter, ok := components.ConfigLoader.(interface{ SetFilename(string) }); ok {
			setter.SetFilename(filename)
		}
	})
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution. The orchestrator's exit code must equal the failing
	// child's exit code.
	if err := cli.Execute(ctx); err != nil {
		var jobErr *domain.JobError
		if errors.As(err, &jobErr) {
			return jobErr.ExitCode
		}
		if errors.Is(err, domain.ErrLaunchFailed) {
			components.Logger.Error(err)
			return launchFailureExitCode
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
