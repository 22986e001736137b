package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

func TestSizeFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(p, make([]byte, 1234), 0o644))
	assert.Equal(t, uint64(1234), Size(p))
}

func TestSizeDirectorySumsRegularFiles(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":         "12345",
		"sub/b.txt":     "123",
		"sub/deep/c.go": "12",
	})
	// Symlinks do not contribute and are not followed.
	require.NoError(t, os.Symlink(filepath.Join(dir, "a.txt"), filepath.Join(dir, "ln")))

	assert.Equal(t, uint64(10), Size(dir))
}

func TestSizeMissing(t *testing.T) {
	assert.Equal(t, uint64(0), Size(filepath.Join(t.TempDir(), "gone")))
}

func TestStatFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "report.tar.gz")
	require.NoError(t, os.WriteFile(p, []byte("abcdef"), 0o644))

	md := Stat(p, MetadataOptions{})
	assert.True(t, md.IsExist)
	assert.True(t, md.IsFile)
	assert.False(t, md.IsDir)
	assert.False(t, md.IsSymlink)
	assert.True(t, md.IsAbsolute)
	assert.False(t, md.IsRelative)
	assert.Equal(t, uint64(6), md.Size)
	assert.Equal(t, "report.tar.gz", md.FullName)
	assert.Equal(t, "report.tar", md.Name)
	assert.Equal(t, "gz", md.Extname)
	assert.Equal(t, filepath.Base(dir), md.ParentName)
	assert.NotZero(t, md.ModifiedAt)
	assert.NotZero(t, md.AccessedAt)
}

func TestStatOmitSize(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.txt": "12345"})

	md := Stat(dir, MetadataOptions{OmitSize: true})
	assert.True(t, md.IsDir)
	assert.Zero(t, md.Size)
}

func TestStatMissingPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ghost.cfg")
	md := Stat(p, MetadataOptions{})

	assert.False(t, md.IsExist)
	assert.False(t, md.IsFile)
	assert.Zero(t, md.Size)
	assert.Zero(t, md.ModifiedAt)
	// Lexical fields survive a failed stat.
	assert.Equal(t, "ghost.cfg", md.FullName)
	assert.Equal(t, "ghost", md.Name)
	assert.Equal(t, "cfg", md.Extname)
}

func TestStatSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "t.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	link := filepath.Join(dir, "l")
	require.NoError(t, os.Symlink(target, link))

	md := Stat(link, MetadataOptions{})
	assert.True(t, md.IsExist)
	assert.True(t, md.IsSymlink)
	assert.True(t, md.IsFile)
}
