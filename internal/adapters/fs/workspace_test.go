package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nobs/internal/adapters/fs"
	"go.trai.ch/nobs/internal/core/domain"
)

func buildContext(t *testing.T) domain.BuildContext {
	t.Helper()
	tmpDir := t.TempDir()
	return domain.BuildContext{
		BuildDir:   filepath.Join(tmpDir, "build_dir"),
		ProjectDir: tmpDir,
	}
}

func TestWorkspace_ObjectPath_BuildDir(t *testing.T) {
	bctx := buildContext(t)
	ws := fs.NewWorkspace()

	object, relSource, err := ws.ObjectPath(bctx, "src/main.cpp", true)
	require.NoError(t, err)

	assert.Equal(t, "src/main.cpp", relSource)
	assert.Equal(t, filepath.Join(bctx.BuildDir, "src", "main.cpp.o"), object)

	// The mirrored directory must exist so the compiler can write there.
	info, err := os.Stat(filepath.Dir(object))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWorkspace_ObjectPath_BesideSource(t *testing.T) {
	bctx := buildContext(t)
	ws := fs.NewWorkspace()

	object, relSource, err := ws.ObjectPath(bctx, "nobs.cpp", false)
	require.NoError(t, err)
	assert.Equal(t, "nobs.cpp", relSource)
	assert.Equal(t, "nobs.cpp.o", object)
}

func TestWorkspace_ObjectPath_AbsoluteSource(t *testing.T) {
	bctx := buildContext(t)
	ws := fs.NewWorkspace()

	source := filepath.Join(bctx.ProjectDir, "lib", "util.cpp")
	object, relSource, err := ws.ObjectPath(bctx, source, true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("lib", "util.cpp"), relSource)
	assert.Equal(t, filepath.Join(bctx.BuildDir, "lib", "util.cpp.o"), object)
}

func TestWorkspace_ObjectPath_DistinctSources(t *testing.T) {
	bctx := buildContext(t)
	ws := fs.NewWorkspace()

	a, _, err := ws.ObjectPath(bctx, "src/a.cpp", true)
	require.NoError(t, err)
	b, _, err := ws.ObjectPath(bctx, "lib/a.cpp", true)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestWorkspace_TargetPath(t *testing.T) {
	bctx := buildContext(t)
	ws := fs.NewWorkspace()

	path, err := ws.TargetPath(bctx, "app", true)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(bctx.BuildDir, "app"), path)

	path, err = ws.TargetPath(bctx, "app", false)
	require.NoError(t, err)
	assert.Equal(t, "app", path)
}

func TestWorkspace_Clean(t *testing.T) {
	bctx := buildContext(t)
	ws := fs.NewWorkspace()

	_, _, err := ws.ObjectPath(bctx, "src/main.cpp", true)
	require.NoError(t, err)

	require.NoError(t, ws.Clean(bctx))

	_, err = os.Stat(bctx.BuildDir)
	assert.True(t, os.IsNotExist(err))

	// Cleaning an already-missing build directory is not an error.
	assert.NoError(t, ws.Clean(bctx))
}

func TestWorkspace_RemoveObjects_KeepsMetadata(t *testing.T) {
	bctx := buildContext(t)
	ws := fs.NewWorkspace()

	object, _, err := ws.ObjectPath(bctx, "src/main.cpp", true)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(object, []byte("obj"), 0o600))
	require.NoError(t, os.WriteFile(object+".meta", []byte("meta"), 0o600))

	target := domain.Target{Name: "app", Sources: []string{"src/main.cpp"}}
	require.NoError(t, ws.RemoveObjects(bctx, target, true))

	_, err = os.Stat(object)
	assert.True(t, os.IsNotExist(err), "object file should be removed")

	_, err = os.Stat(object + ".meta")
	assert.NoError(t, err, "side-car record must survive artifact removal")
}
