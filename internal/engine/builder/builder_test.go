package builder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nobs/internal/adapters/fs"
	"go.trai.ch/nobs/internal/adapters/meta"
	"go.trai.ch/nobs/internal/core/domain"
	"go.trai.ch/nobs/internal/engine/builder"
)

func newTestBuilder() *builder.Builder {
	return builder.NewBuilder(meta.NewStore(), fs.NewWorkspace())
}

func writeSources(t *testing.T, names ...string) []string {
	t.Helper()
	sources := make([]string, 0, len(names))
	for _, name := range names {
		require.NoError(t, os.MkdirAll(filepath.Dir(name), 0o750))
		require.NoError(t, os.WriteFile(name, []byte("int main() { return 0; }\n"), 0o644))
		sources = append(sources, name)
	}
	return sources
}

// markBuilt persists the records of a state's compile jobs, as the
// scheduler would after each job exits cleanly.
func markBuilt(t *testing.T, state *domain.BuildState) {
	t.Helper()
	store := meta.NewStore()
	for _, job := range state.Jobs {
		if step, ok := job.Step.(domain.CompileStep); ok {
			require.NoError(t, store.Store(step.Record))
		}
	}
}

func testContext(t *testing.T) domain.BuildContext {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return domain.BuildContext{
		BuildDir:     "build_dir",
		ProjectDir:   dir,
		ParallelJobs: 2,
	}
}

func TestBuild_FirstBuildCompilesEverything(t *testing.T) {
	bctx := testContext(t)
	sources := writeSources(t, "src/a.cpp", "src/b.cpp", "src/c.cpp")
	target := domain.Target{Name: "app", Type: domain.Executable, Sources: sources, CompileFlags: []string{"-O2"}}

	state, err := newTestBuilder().Build(context.Background(), bctx, domain.DefaultToolchain(), target, true)
	require.NoError(t, err)

	require.Len(t, state.Jobs, 4)
	assert.True(t, state.NeedsLinking)

	for _, job := range state.Jobs[:3] {
		assert.Equal(t, domain.KindCompile, job.Step.Kind())
		assert.Equal(t, domain.StatusPending, job.Status)
		assert.Empty(t, job.DependsOn)
	}

	link := state.Jobs[3]
	assert.Equal(t, domain.KindLink, link.Step.Kind())
	assert.Equal(t, []int{0, 1, 2}, link.DependsOn)

	step, ok := link.Step.(domain.LinkStep)
	require.True(t, ok)
	assert.Len(t, step.ObjectFiles, 3)
}

func TestBuild_SecondBuildIsNoop(t *testing.T) {
	bctx := testContext(t)
	sources := writeSources(t, "src/a.cpp", "src/b.cpp")
	target := domain.Target{Name: "app", Type: domain.Executable, Sources: sources}

	b := newTestBuilder()
	first, err := b.Build(context.Background(), bctx, domain.DefaultToolchain(), target, true)
	require.NoError(t, err)
	markBuilt(t, first)

	second, err := b.Build(context.Background(), bctx, domain.DefaultToolchain(), target, true)
	require.NoError(t, err)

	assert.Empty(t, second.Jobs)
	assert.False(t, second.NeedsLinking)
}

func TestBuild_FlagChangeRecompilesEverything(t *testing.T) {
	bctx := testContext(t)
	sources := writeSources(t, "src/a.cpp", "src/b.cpp")
	target := domain.Target{Name: "app", Type: domain.Executable, Sources: sources, CompileFlags: []string{"-O0"}}

	b := newTestBuilder()
	first, err := b.Build(context.Background(), bctx, domain.DefaultToolchain(), target, true)
	require.NoError(t, err)
	markBuilt(t, first)

	target.CompileFlags = []string{"-O2"}
	second, err := b.Build(context.Background(), bctx, domain.DefaultToolchain(), target, true)
	require.NoError(t, err)

	require.Len(t, second.Jobs, 3)
	assert.Equal(t, domain.KindCompile, second.Jobs[0].Step.Kind())
	assert.Equal(t, domain.KindCompile, second.Jobs[1].Step.Kind())
	assert.Equal(t, domain.KindLink, second.Jobs[2].Step.Kind())
}

func TestBuild_TouchedSourceRecompilesAlone(t *testing.T) {
	bctx := testContext(t)
	sources := writeSources(t, "src/a.cpp", "src/b.cpp", "src/c.cpp")
	target := domain.Target{Name: "app", Type: domain.Executable, Sources: sources}

	b := newTestBuilder()
	first, err := b.Build(context.Background(), bctx, domain.DefaultToolchain(), target, true)
	require.NoError(t, err)
	markBuilt(t, first)

	future := time.Now().Add(time.Second)
	require.NoError(t, os.Chtimes("src/b.cpp", future, future))

	second, err := b.Build(context.Background(), bctx, domain.DefaultToolchain(), target, true)
	require.NoError(t, err)

	require.Len(t, second.Jobs, 2)
	assert.Equal(t, domain.KindCompile, second.Jobs[0].Step.Kind())

	step, ok := second.Jobs[0].Step.(domain.CompileStep)
	require.True(t, ok)
	assert.Equal(t, "src/b.cpp", step.Record.SourceFile)

	// The relink still covers the untouched objects.
	link, ok := second.Jobs[1].Step.(domain.LinkStep)
	require.True(t, ok)
	assert.Len(t, link.ObjectFiles, 3)
	assert.Equal(t, []int{0}, second.Jobs[1].DependsOn)
}

func TestBuild_NoSourcesNoJobs(t *testing.T) {
	bctx := testContext(t)
	target := domain.Target{Name: "empty", Type: domain.Executable}

	state, err := newTestBuilder().Build(context.Background(), bctx, domain.DefaultToolchain(), target, true)
	require.NoError(t, err)

	assert.Empty(t, state.Jobs)
	assert.False(t, state.NeedsLinking)
}

func TestBuild_CorruptMetadataFails(t *testing.T) {
	bctx := testContext(t)
	sources := writeSources(t, "src/a.cpp")
	target := domain.Target{Name: "app", Type: domain.Executable, Sources: sources}

	b := newTestBuilder()
	first, err := b.Build(context.Background(), bctx, domain.DefaultToolchain(), target, true)
	require.NoError(t, err)
	markBuilt(t, first)

	step, ok := first.Jobs[0].Step.(domain.CompileStep)
	require.True(t, ok)
	require.NoError(t, os.WriteFile(step.Record.ObjectFile+".meta", []byte("garbage"), 0o644))

	_, err = b.Build(context.Background(), bctx, domain.DefaultToolchain(), target, true)
	require.ErrorIs(t, err, domain.ErrMetadataCorrupt)
}
