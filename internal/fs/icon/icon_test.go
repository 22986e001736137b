package icon

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconProducesSquarePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")
	require.NoError(t, os.WriteFile(path, []byte("# hi"), 0o644))

	e := New(filepath.Join(dir, "cache"))
	out, err := e.Icon(path, 48, "")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 48, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestIconCachesBySize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	e := New(filepath.Join(dir, "cache"))
	first, err := e.Icon(path, 32, "")
	require.NoError(t, err)
	second, err := e.Icon(path, 32, "")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := e.Icon(path, 64, "")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestIconSavePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	want := filepath.Join(dir, "out", "a.png")
	e := New(filepath.Join(dir, "cache"))
	out, err := e.Icon(path, 0, want)
	require.NoError(t, err)
	assert.Equal(t, want, out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, DefaultSize, img.Bounds().Dx())
}

func TestIconDirectory(t *testing.T) {
	dir := t.TempDir()
	e := New(filepath.Join(dir, "cache"))
	out, err := e.Icon(dir, 32, "")
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestIconMissingPathFallsBack(t *testing.T) {
	dir := t.TempDir()
	e := New(filepath.Join(dir, "cache"))
	out, err := e.Icon(filepath.Join(dir, "nope.go"), 32, "")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 32, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestIconCacheHitHook(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	hits := 0
	e := New(filepath.Join(dir, "cache"))
	e.OnCacheHit(func() { hits++ })

	_, err := e.Icon(path, 32, "")
	require.NoError(t, err)
	assert.Equal(t, 0, hits)

	_, err = e.Icon(path, 32, "")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)

	// An explicit save path bypasses the cache entirely.
	_, err = e.Icon(path, 32, filepath.Join(dir, "forced.png"))
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestRenderGlyphSizes(t *testing.T) {
	for _, size := range []int{16, 32, 257} {
		img := renderGlyph(false, "go", size)
		assert.Equal(t, size, img.Bounds().Dx())
		img = renderGlyph(true, "", size)
		assert.Equal(t, size, img.Bounds().Dy())
	}
}
