package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nobs/internal/adapters/config"
	"go.trai.ch/nobs/internal/adapters/console"
	"go.trai.ch/nobs/internal/adapters/fs"
	"go.trai.ch/nobs/internal/adapters/logger"
	"go.trai.ch/nobs/internal/adapters/meta"
	"go.trai.ch/nobs/internal/adapters/proc"
	"go.trai.ch/nobs/internal/adapters/telemetry"
	"go.trai.ch/nobs/internal/app"
	"go.trai.ch/nobs/internal/engine/builder"
	"go.trai.ch/nobs/internal/engine/scheduler"
)

// testProvider wires the real components against the current directory,
// sending progress output to the given writer.
func testProvider(out *bytes.Buffer) ComponentProvider {
	return func(_ context.Context) (*app.Components, func(), error) {
		loader := config.NewLoader()
		store := meta.NewStore()
		workspace := fs.NewWorkspace()
		log := logger.New()

		sched := scheduler.NewScheduler(proc.NewLauncher(), store, console.NewWithWriter(out), telemetry.NewNoopTracer(), log)
		sched.SetPollInterval(time.Millisecond)

		application := app.New(loader, builder.NewBuilder(store, workspace), sched, workspace, log)
		return &app.Components{
			App:          application,
			Logger:       log,
			Tracer:       telemetry.NewNoopTracer(),
			ConfigLoader: loader,
		}, func() {}, nil
	}
}

func writeProject(t *testing.T, compiler string) {
	t.Helper()
	t.Chdir(t.TempDir())

	require.NoError(t, os.MkdirAll("src", 0o750))
	require.NoError(t, os.WriteFile(filepath.Join("src", "a.cpp"), []byte("int main() { return 0; }\n"), 0o644))

	manifest := "version: \"1\"\ncompiler: " + compiler + "\nlinker: " + compiler + "\ntargets:\n  - name: app\n    sources: [src/a.cpp]\n"
	require.NoError(t, os.WriteFile("nobs.yaml", []byte(manifest), 0o644))
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, testProvider(&out))
	assert.Equal(t, 0, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_SuccessfulBuild(t *testing.T) {
	writeProject(t, "true")

	var out bytes.Buffer
	exitCode := run(context.Background(), []string{"build"}, new(bytes.Buffer), testProvider(&out))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, out.String(), "Running build of app")
}

func TestRun_FailedBuildReturnsChildExitCode(t *testing.T) {
	writeProject(t, "false")

	var out bytes.Buffer
	exitCode := run(context.Background(), []string{"build"}, new(bytes.Buffer), testProvider(&out))

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, out.String(), "Stopping build.")
}

func TestRun_MissingManifest(t *testing.T) {
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	exitCode := run(context.Background(), []string{"build"}, new(bytes.Buffer), testProvider(&out))
	assert.Equal(t, 1, exitCode)
}

func TestRun_MissingCompilerReturnsLaunchFailure(t *testing.T) {
	writeProject(t, "definitely-not-a-compiler-on-path")

	var out bytes.Buffer
	exitCode := run(context.Background(), []string{"build"}, new(bytes.Buffer), testProvider(&out))
	assert.Equal(t, launchFailureExitCode, exitCode)
}
