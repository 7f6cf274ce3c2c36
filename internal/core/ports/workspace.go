package ports

import "go.trai.ch/nobs/internal/core/domain"

// Workspace derives build artifact paths and manages the build directory
// lifecycle.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// ObjectPath derives the object file path for a source. With
	// useBuildDir true the object lands under the build root, mirroring
	// the source's path relative to the project root; otherwise it lands
	// beside the source. The returned relSource is the source path
	// relative to the project root. Needed directories are created.
	ObjectPath(bctx domain.BuildContext, source string, useBuildDir bool) (object string, relSource string, err error)

	// TargetPath derives the linked artifact path for a target name,
	// under the build root or the current directory depending on
	// useBuildDir.
	TargetPath(bctx domain.BuildContext, name string, useBuildDir bool) (string, error)

	// Clean recursively deletes the build directory.
	Clean(bctx domain.BuildContext) error

	// RemoveObjects deletes the object files and side-car records a
	// target's sources map to. Used by the self-rebuild bootstrap to
	// drop its intermediates after a successful rebuild.
	RemoveObjects(bctx domain.BuildContext, target domain.Target, useBuildDir bool) error
}
