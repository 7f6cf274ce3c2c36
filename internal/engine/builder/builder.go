// Package builder constructs per-target job graphs from the incremental
// rebuild cache.
package builder

import (
	"context"
	"runtime"

	"go.trai.ch/nobs/internal/core/domain"
	"go.trai.ch/nobs/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Builder turns a target's source list into the jobs the scheduler
// executes.
type Builder struct {
	meta      ports.MetadataStore
	workspace ports.Workspace
}

// NewBuilder creates a new Builder.
func NewBuilder(meta ports.MetadataStore, workspace ports.Workspace) *Builder {
	return &Builder{
		meta:      meta,
		workspace: workspace,
	}
}

// Build consults the metadata cache for every source of the target, in
// order, and appends one compile job per stale source. If anything needs
// compiling, one link job is appended whose object list covers all
// sources (linking always uses the complete, current object set) and
// which depends on every compile job just created. A target whose every
// source is fresh yields zero jobs.
func (b *Builder) Build(ctx context.Context, bctx domain.BuildContext, tc domain.Toolchain, target domain.Target, useBuildDir bool) (*domain.BuildState, error) {
	flags := target.FlattenedFlags()

	objects := make([]string, len(target.Sources))
	relSources := make([]string, len(target.Sources))
	for i, source := range target.Sources {
		object, relSource, err := b.workspace.ObjectPath(bctx, source, useBuildDir)
		if err != nil {
			return nil, err
		}
		objects[i] = object
		relSources[i] = relSource
	}

	records, err := b.fingerprintAll(ctx, relSources, objects, flags)
	if err != nil {
		return nil, err
	}

	state := &domain.BuildState{Target: target, Toolchain: tc}
	var compileJobs []int
	for i := range target.Sources {
		prior, err := b.meta.Load(objects[i])
		if err != nil {
			return nil, err
		}
		if prior != nil && prior.Equal(records[i]) {
			continue
		}

		state.Jobs = append(state.Jobs, &domain.Job{
			Step:   domain.CompileStep{Record: records[i]},
			Status: domain.StatusPending,
		})
		compileJobs = append(compileJobs, len(state.Jobs)-1)
		// TODO: once a target needs linking, targets that link against it
		// should be marked for relinking as well. Cross-target edges do
		// not exist yet.
		state.NeedsLinking = true
	}

	if state.NeedsLinking {
		targetFile, err := b.workspace.TargetPath(bctx, target.Name, useBuildDir)
		if err != nil {
			return nil, err
		}
		state.Jobs = append(state.Jobs, &domain.Job{
			Step: domain.LinkStep{
				ObjectFiles: objects,
				TargetFile:  targetFile,
			},
			Status:    domain.StatusPending,
			DependsOn: compileJobs,
		})
	}

	return state, nil
}

// fingerprintAll stats the sources with bounded concurrency; results come
// back in source order.
func (b *Builder) fingerprintAll(ctx context.Context, relSources, objects []string, flags string) ([]domain.CompileRecord, error) {
	records := make([]domain.CompileRecord, len(relSources))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range relSources {
		g.Go(func() error {
			record, err := b.meta.Fingerprint(relSources[i], objects[i], flags)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}
