package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))

	wrapped := fmt.Errorf("outer: %w", WrapExitError(ExitStreamUnavailable, "open", io.ErrClosedPipe))
	assert.Equal(t, ExitStreamUnavailable, GetExitCode(wrapped))
	assert.True(t, errors.Is(wrapped, io.ErrClosedPipe))
}

func TestExitError_Message(t *testing.T) {
	assert.Equal(t, "bad flag", NewExitError(ExitCommandError, "bad flag").Error())
	assert.Equal(t, "open: io: read/write on closed pipe",
		WrapExitError(ExitStreamUnavailable, "open", io.ErrClosedPipe).Error())
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(dest, []byte("old"), 0644))

	err := writeFileAtomic(dest, 0644, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	})
	require.NoError(t, err)
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(dest)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), fi.Mode().Perm())
	}

	failure := errors.New("write failed")
	err = writeFileAtomic(dest, 0644, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return failure
	})
	assert.ErrorIs(t, err, failure)
	got, err = os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
