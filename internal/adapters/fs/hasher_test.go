package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hellobundle/internal/adapters/fs"
	"go.trai.ch/hellobundle/internal/core/domain"
)

// emptyDigest is the xxhash64 of zero bytes.
// If this changes, recorded builds can no longer be verified.
const emptyDigest = "ef46db3751d8e999"

func TestHasher_HashFile(t *testing.T) {
	dir := t.TempDir()
	writeFragments(t, dir, map[string]string{
		"empty.js": "",
		"a.js":     "var a=1;",
		"b.js":     "var a=1;",
		"c.js":     "var a=2;",
	})
	h := fs.NewHasher()

	empty, err := h.HashFile(filepath.Join(dir, "empty.js"))
	require.NoError(t, err)
	assert.Equal(t, emptyDigest, empty)

	a, err := h.HashFile(filepath.Join(dir, "a.js"))
	require.NoError(t, err)
	assert.Len(t, a, 16)

	b, err := h.HashFile(filepath.Join(dir, "b.js"))
	require.NoError(t, err)
	assert.Equal(t, a, b, "same content should hash the same")

	c, err := h.HashFile(filepath.Join(dir, "c.js"))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestHasher_HashFile_Missing(t *testing.T) {
	_, err := fs.NewHasher().HashFile(filepath.Join(t.TempDir(), "missing.js"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}

func TestHasher_HashFiles(t *testing.T) {
	dir := t.TempDir()
	writeFragments(t, dir, map[string]string{
		"a.js": "var a=1;",
		"b.js": "var b=2;",
	})
	a := filepath.Join(dir, "a.js")
	b := filepath.Join(dir, "b.js")
	h := fs.NewHasher()

	t.Run("deterministic", func(t *testing.T) {
		first, err := h.HashFiles([]string{a, b})
		require.NoError(t, err)
		second, err := h.HashFiles([]string{a, b})
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("order sensitive", func(t *testing.T) {
		ab, err := h.HashFiles([]string{a, b})
		require.NoError(t, err)
		ba, err := h.HashFiles([]string{b, a})
		require.NoError(t, err)
		assert.NotEqual(t, ab, ba)
	})

	t.Run("content sensitive", func(t *testing.T) {
		before, err := h.HashFiles([]string{a, b})
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(b, []byte("var b=3;"), domain.PrivateFilePerm))
		after, err := h.HashFiles([]string{a, b})
		require.NoError(t, err)
		assert.NotEqual(t, before, after)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := h.HashFiles([]string{a, filepath.Join(dir, "missing.js")})
		require.Error(t, err)
	})
}
