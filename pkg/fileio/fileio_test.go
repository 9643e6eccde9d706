package fileio

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "data.bin")
	in := []byte{0x00, 0x0D, 0x0A, 0xFF, 0x1A}

	assert.False(t, Exists(name))
	require.NoError(t, WriteFile(name, in))
	assert.True(t, Exists(name))

	out, err := ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadFileMissing(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing.huf")
	_, err := ReadFile(name)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), name)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
}

func TestWriteFileBadDir(t *testing.T) {
	name := filepath.Join(t.TempDir(), "no", "such", "dir", "out.huf")
	err := WriteFile(name, []byte("x"))
	assert.ErrorIs(t, err, ErrIO)
	assert.Contains(t, err.Error(), "write")
}
