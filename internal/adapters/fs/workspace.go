// Package fs implements the build workspace layout: deriving object and
// target artifact paths and managing the build directory lifecycle.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/nobs/internal/core/domain"
	"go.trai.ch/nobs/internal/core/ports"
	"go.trai.ch/zerr"
)

// objectFileExtension is appended to the relative source path to name the
// object file.
const objectFileExtension = ".o"

var _ ports.Workspace = (*Workspace)(nil)

// Workspace implements ports.Workspace on the local filesystem.
type Workspace struct{}

// NewWorkspace creates a new Workspace.
func NewWorkspace() *Workspace {
	return &Workspace{}
}

// ObjectPath derives the object file path for a source.
//
// In build-directory mode the object mirrors the source's path relative
// to the project root under the build root, so two distinct sources of a
// target can never collide. Otherwise the object lands beside the source.
// The directories the object needs are created on the way.
func (w *Workspace) ObjectPath(bctx domain.BuildContext, source string, useBuildDir bool) (string, string, error) {
	relSource, err := w.relativeSource(bctx, source)
	if err != nil {
		return "", "", err
	}

	if !useBuildDir {
		return source + objectFileExtension, relSource, nil
	}

	buildRoot, err := filepath.Abs(bctx.BuildDir)
	if err != nil {
		return "", "", zerr.With(zerr.Wrap(err, "failed to resolve build directory"), "path", bctx.BuildDir)
	}

	object := filepath.Join(buildRoot, relSource) + objectFileExtension
	if err := createDirIfMissing(filepath.Dir(object)); err != nil {
		return "", "", err
	}

	return object, relSource, nil
}

// TargetPath derives the linked artifact path for a target name: under
// the build root in build-directory mode, in the current directory
// otherwise. The target file carries no extension.
func (w *Workspace) TargetPath(bctx domain.BuildContext, name string, useBuildDir bool) (string, error) {
	if !useBuildDir {
		return name, nil
	}

	buildRoot, err := filepath.Abs(bctx.BuildDir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve build directory"), "path", bctx.BuildDir)
	}
	if err := createDirIfMissing(buildRoot); err != nil {
		return "", err
	}

	return filepath.Join(buildRoot, name), nil
}

// Clean recursively deletes the build directory.
func (w *Workspace) Clean(bctx domain.BuildContext) error {
	if err := os.RemoveAll(bctx.BuildDir); err != nil {
		return zerr.With(zerr.With(domain.ErrFilesystem, "cause", err.Error()), "path", bctx.BuildDir)
	}
	return nil
}

// RemoveObjects deletes the object files a target's sources map to. The
// side-car records are kept on purpose: the self-rebuild bootstrap drops
// its intermediates but must still see an up-to-date cache next run.
func (w *Workspace) RemoveObjects(bctx domain.BuildContext, target domain.Target, useBuildDir bool) error {
	for _, source := range target.Sources {
		relSource, err := w.relativeSource(bctx, source)
		if err != nil {
			return err
		}

		object := source + objectFileExtension
		if useBuildDir {
			buildRoot, err := filepath.Abs(bctx.BuildDir)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to resolve build directory"), "path", bctx.BuildDir)
			}
			object = filepath.Join(buildRoot, relSource) + objectFileExtension
		}

		if err := os.Remove(object); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.With(domain.ErrFilesystem, "cause", err.Error()), "path", object)
		}
	}
	return nil
}

// relativeSource normalizes a source path relative to the project root.
// Relative declarations pass through unchanged.
func (w *Workspace) relativeSource(bctx domain.BuildContext, source string) (string, error) {
	if !filepath.IsAbs(source) {
		return filepath.Clean(source), nil
	}

	rel, err := filepath.Rel(bctx.ProjectDir, source)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "source is not under the project directory"), "path", source)
	}
	return rel, nil
}

func createDirIfMissing(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.With(domain.ErrFilesystem, "cause", err.Error()), "path", dir)
	}
	return nil
}
