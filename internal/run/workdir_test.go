package run

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skiffhq/skiff/internal/errdefs"
)

func TestWithWorkingDirEntersAndRestores(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	dir := t.TempDir()

	var inside string
	err = withWorkingDir(dir, func() error {
		inside, _ = os.Getwd()
		return nil
	})
	require.NoError(t, err)

	// Symlink-resolved comparison (macOS tempdirs live under /private).
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	insideResolved, err := filepath.EvalSymlinks(inside)
	require.NoError(t, err)
	assert.Equal(t, resolved, insideResolved)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, orig, after)
}

func TestWithWorkingDirRestoresOnError(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)

	boom := errors.New("load failed")
	err = withWorkingDir(t.TempDir(), func() error { return boom })
	require.ErrorIs(t, err, boom)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, orig, after)
}

func TestWithWorkingDirEmptyRunsInPlace(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)

	called := false
	require.NoError(t, withWorkingDir("", func() error {
		called = true
		cwd, _ := os.Getwd()
		assert.Equal(t, orig, cwd)
		return nil
	}))
	assert.True(t, called)
}

func TestWithWorkingDirMissingFolder(t *testing.T) {
	err := withWorkingDir(filepath.Join(t.TempDir(), "absent"), func() error {
		t.Fatal("fn must not run when the folder cannot be entered")
		return nil
	})
	require.Error(t, err)
	assert.True(t, errdefs.IsConfig(err))
}
