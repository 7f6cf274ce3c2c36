package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nobs/internal/core/domain"
)

func TestTarget_FlattenedFlags(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  string
	}{
		{name: "empty", flags: nil, want: ""},
		{name: "single", flags: []string{"--std=c++23"}, want: "--std=c++23"},
		{name: "ordered", flags: []string{"-O2", "-Wall", "-Iinclude"}, want: "-O2 -Wall -Iinclude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := domain.Target{Name: "app", CompileFlags: tt.flags}
			assert.Equal(t, tt.want, target.FlattenedFlags())
		})
	}
}

func TestCompileStep_Argv(t *testing.T) {
	step := domain.CompileStep{Record: domain.CompileRecord{
		SourceFile:   "src/main.cpp",
		ObjectFile:   "/build/src/main.cpp.o",
		CompileFlags: "--std=c++23 -O2",
	}}

	got := step.Argv(domain.Toolchain{Compiler: "g++", Linker: "g++"})
	want := []string{"g++", "--std=c++23", "-O2", "-c", "-o", "/build/src/main.cpp.o", "src/main.cpp"}
	assert.Equal(t, want, got)
}

func TestCompileStep_Argv_EmptyFlags(t *testing.T) {
	step := domain.CompileStep{Record: domain.CompileRecord{
		SourceFile: "a.cpp",
		ObjectFile: "a.cpp.o",
	}}

	got := step.Argv(domain.DefaultToolchain())
	assert.Equal(t, []string{"g++", "-c", "-o", "a.cpp.o", "a.cpp"}, got)
}

func TestLinkStep_Argv(t *testing.T) {
	step := domain.LinkStep{
		ObjectFiles: []string{"/build/a.cpp.o", "/build/b.cpp.o"},
		TargetFile:  "/build/app",
	}

	got := step.Argv(domain.Toolchain{Compiler: "g++", Linker: "ld"})
	assert.Equal(t, []string{"ld", "-o", "/build/app", "/build/a.cpp.o", "/build/b.cpp.o"}, got)
}

func TestCompileRecord_Equal(t *testing.T) {
	base := domain.CompileRecord{
		SourceFile:      "src/main.cpp",
		ObjectFile:      "/build/src/main.cpp.o",
		CompileFlags:    "-O2",
		SourceTimestamp: 42,
	}

	if !base.Equal(base) {
		t.Error("record should equal itself")
	}

	changedFlags := base
	changedFlags.CompileFlags = "-O3"
	if base.Equal(changedFlags) {
		t.Error("flag change must break equality")
	}

	changedStamp := base
	changedStamp.SourceTimestamp = 43
	if base.Equal(changedStamp) {
		t.Error("timestamp change must break equality")
	}

	changedObject := base
	changedObject.ObjectFile = "/elsewhere/main.cpp.o"
	if base.Equal(changedObject) {
		t.Error("object path change must break equality")
	}
}

func TestBuildState_CompilationFinished(t *testing.T) {
	compileA := &domain.Job{Step: domain.CompileStep{}, Status: domain.StatusCompleted}
	compileB := &domain.Job{Step: domain.CompileStep{}, Status: domain.StatusRunning}
	link := &domain.Job{Step: domain.LinkStep{}, Status: domain.StatusPending}

	state := &domain.BuildState{Jobs: []*domain.Job{compileA, compileB, link}}
	if state.CompilationFinished() {
		t.Error("compilation should not be finished while a compile job runs")
	}

	compileB.Status = domain.StatusCompleted
	if !state.CompilationFinished() {
		t.Error("compilation should be finished once all compile jobs completed")
	}
}

func TestBuildContext_Parallelism(t *testing.T) {
	assert.Equal(t, 1, domain.BuildContext{ParallelJobs: 0}.Parallelism())
	assert.Equal(t, 1, domain.BuildContext{ParallelJobs: -3}.Parallelism())
	assert.Equal(t, 8, domain.BuildContext{ParallelJobs: 8}.Parallelism())
}

func TestManifest_TargetByName(t *testing.T) {
	m := &domain.Manifest{Targets: []domain.Target{{Name: "app"}, {Name: "lib"}}}

	got, err := m.TargetByName("lib")
	assert.NoError(t, err)
	assert.Equal(t, "lib", got.Name)

	_, err = m.TargetByName("missing")
	assert.ErrorIs(t, err, domain.ErrTargetNotFound)
}
