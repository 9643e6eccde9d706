package console

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shrinkit_go/pkg/logger"
)

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(strings.NewReader(input), &out, logger.Nop()).Run())
	return out.String()
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "poem.txt.huf", OutputName("poem.txt", true))
	assert.Equal(t, "unhuf.poem.txt", OutputName("poem.txt.huf", false))
	assert.Equal(t, filepath.Join("res", "unhuf.poem.txt"), OutputName(filepath.Join("res", "poem.txt.huf"), false))
}

func TestCompressDecompressLoop(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "poem.txt")
	content := []byte("Heavy is the head that wears the crown\n\x00\xff")
	require.NoError(t, os.WriteFile(src, content, 0o644))

	huf := src + ".huf"
	out := run(t, "c\n"+src+"\nd\n"+huf+"\nq\n")
	assert.Contains(t, out, "Welcome to Shrink-It!")
	assert.Contains(t, out, "compressed bytes to "+huf)
	assert.Contains(t, out, "decompressed bytes to")

	back, err := os.ReadFile(filepath.Join(dir, "unhuf.poem.txt"))
	require.NoError(t, err)
	assert.Equal(t, content, back)
}

func TestOverwriteDeclined(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("ABAB"), 0o644))
	require.NoError(t, os.WriteFile(src+".huf", []byte("keep"), 0o644))

	out := run(t, "C\n"+src+"\nmaybe\nn\nQ\n")
	assert.Contains(t, out, "Please answer y or n.")
	assert.Contains(t, out, "Operation canceled.")

	kept, err := os.ReadFile(src + ".huf")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(kept))
}

func TestErrorsAreReported(t *testing.T) {
	dir := t.TempDir()
	single := filepath.Join(dir, "same.txt")
	require.NoError(t, os.WriteFile(single, []byte("zzzz"), 0o644))
	bogus := filepath.Join(dir, "bogus.huf")
	require.NoError(t, os.WriteFile(bogus, []byte("nope"), 0o644))

	out := run(t, "c\n"+single+"\nc\n"+filepath.Join(dir, "missing")+"\nd\n"+bogus+"\nq\n")
	assert.Contains(t, out, "Unable to write compressed file: huffman: input must contain at least two distinct symbols")
	assert.Contains(t, out, "Unable to write compressed file: fileio: read")
	assert.Contains(t, out, "Unable to decompress: huffman: not a compressed container")
}

func TestEmptyNameCancels(t *testing.T) {
	out := run(t, "c\n\nq\n")
	assert.Contains(t, out, "Operation canceled.")
}

func TestEOFEndsLoop(t *testing.T) {
	out := run(t, "x\n")
	assert.Contains(t, out, "Enter your choice: ")
}
