package fspro

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/FSPro/backend/internal/fs"
	"github.com/GriffinCanCode/FSPro/backend/internal/fs/icon"
	"github.com/GriffinCanCode/FSPro/backend/internal/logging"
	"github.com/GriffinCanCode/FSPro/backend/internal/types"
)

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	return New(icon.New(filepath.Join(t.TempDir(), "icons")), nil, logging.NewDefault())
}

func exec(t *testing.T, p *Provider, tool string, params map[string]interface{}) *types.Result {
	t.Helper()
	result, err := p.Execute(context.Background(), tool, params, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestDefinitionListsAllTools(t *testing.T) {
	p := newTestProvider(t)
	def := p.Definition()

	assert.Equal(t, "fspro", def.ID)
	assert.Equal(t, types.CategoryFilesystem, def.Category)
	assert.Len(t, def.Tools, len(p.handlers))

	for _, tool := range def.Tools {
		_, ok := p.handlers[tool.ID]
		assert.True(t, ok, "tool %s has no handler", tool.ID)
	}
}

func TestExecuteUnknownTool(t *testing.T) {
	p := newTestProvider(t)
	result := exec(t, p, "fspro.nope", nil)
	assert.False(t, result.Success)
}

func TestInspectCommands(t *testing.T) {
	p := newTestProvider(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.tar.gz")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	result := exec(t, p, "fspro.is_exist", map[string]interface{}{"path": file})
	assert.True(t, result.Success)
	assert.Equal(t, true, result.Data["exists"])

	result = exec(t, p, "fspro.is_file", map[string]interface{}{"path": file})
	assert.Equal(t, true, result.Data["is_file"])

	result = exec(t, p, "fspro.is_dir", map[string]interface{}{"path": dir})
	assert.Equal(t, true, result.Data["is_dir"])

	result = exec(t, p, "fspro.is_symlink", map[string]interface{}{"path": file})
	assert.Equal(t, false, result.Data["is_symlink"])

	result = exec(t, p, "fspro.is_absolute", map[string]interface{}{"path": file})
	assert.Equal(t, true, result.Data["is_absolute"])

	result = exec(t, p, "fspro.is_relative", map[string]interface{}{"path": "notes/a.txt"})
	assert.Equal(t, true, result.Data["is_relative"])

	result = exec(t, p, "fspro.name", map[string]interface{}{"path": file})
	assert.Equal(t, "notes.tar", result.Data["name"])

	result = exec(t, p, "fspro.full_name", map[string]interface{}{"path": file})
	assert.Equal(t, "notes.tar.gz", result.Data["full_name"])

	result = exec(t, p, "fspro.extname", map[string]interface{}{"path": file})
	assert.Equal(t, "gz", result.Data["extname"])

	result = exec(t, p, "fspro.parent_name", map[string]interface{}{"path": file, "level": float64(1)})
	assert.True(t, result.Success)
	assert.Equal(t, filepath.Base(dir), result.Data["parent_name"])
}

func TestParentNameBeyondRoot(t *testing.T) {
	p := newTestProvider(t)
	result := exec(t, p, "fspro.parent_name", map[string]interface{}{"path": "/tmp", "level": float64(99)})
	assert.False(t, result.Success)
	assert.Equal(t, string(fs.KindInvalidPath), result.Data["kind"])
}

func TestMissingPathParam(t *testing.T) {
	p := newTestProvider(t)
	for _, tool := range []string{"fspro.is_exist", "fspro.size", "fspro.metadata", "fspro.compress", "fspro.transfer", "fspro.icon"} {
		result := exec(t, p, tool, map[string]interface{}{})
		assert.False(t, result.Success, "%s should require a path", tool)
	}
}

func TestSizeCommands(t *testing.T) {
	p := newTestProvider(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.bin"), make([]byte, 2048), 0o644))

	result := exec(t, p, "fspro.size", map[string]interface{}{"path": dir})
	assert.Equal(t, uint64(2048), result.Data["size"])

	result = exec(t, p, "fspro.size_human", map[string]interface{}{"path": dir})
	assert.Equal(t, "2.00 KB", result.Data["size_human"])
}

func TestMimeType(t *testing.T) {
	p := newTestProvider(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(file, []byte("plain text content"), 0o644))

	result := exec(t, p, "fspro.mime_type", map[string]interface{}{"path": file})
	assert.True(t, result.Success)
	assert.Contains(t, result.Data["mime_type"], "text/plain")

	result = exec(t, p, "fspro.mime_type", map[string]interface{}{"path": dir})
	assert.Equal(t, "inode/directory", result.Data["mime_type"])

	result = exec(t, p, "fspro.mime_type", map[string]interface{}{"path": filepath.Join(dir, "gone")})
	assert.False(t, result.Success)
	assert.Equal(t, string(fs.KindNotFound), result.Data["kind"])
}

func TestMetadataCommand(t *testing.T) {
	p := newTestProvider(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "report.md")
	require.NoError(t, os.WriteFile(file, []byte("# title"), 0o644))

	result := exec(t, p, "fspro.metadata", map[string]interface{}{"path": file})
	assert.True(t, result.Success)
	assert.Equal(t, true, result.Data["isExist"])
	assert.Equal(t, true, result.Data["isFile"])
	assert.Equal(t, "report", result.Data["name"])
	assert.Equal(t, "md", result.Data["extname"])
	assert.Equal(t, float64(7), result.Data["size"])

	result = exec(t, p, "fspro.metadata", map[string]interface{}{
		"path":    dir,
		"options": map[string]interface{}{"omitSize": true},
	})
	assert.Equal(t, true, result.Data["isDir"])
	assert.Equal(t, float64(0), result.Data["size"])
}

func TestIconCommands(t *testing.T) {
	p := newTestProvider(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "script.go")
	require.NoError(t, os.WriteFile(file, []byte("package main"), 0o644))

	result := exec(t, p, "fspro.icon", map[string]interface{}{"path": file, "size": float64(24)})
	require.True(t, result.Success)
	iconPath, ok := result.Data["icon_path"].(string)
	require.True(t, ok)
	assert.FileExists(t, iconPath)

	// A path that does not exist still resolves to a generic icon.
	result = exec(t, p, "fspro.icon", map[string]interface{}{"path": filepath.Join(dir, "ghost.txt")})
	require.True(t, result.Success)
	assert.FileExists(t, result.Data["icon_path"].(string))

	result = exec(t, p, "fspro.get_default_save_icon_path", nil)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Data["icon_path"])
}

func TestArchiveCommands(t *testing.T) {
	p := newTestProvider(t)
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "skip.txt"), []byte("no"), 0o644))

	work := t.TempDir()
	archive := filepath.Join(work, "out.tar.gz")
	result := exec(t, p, "fspro.compress", map[string]interface{}{
		"path":   src,
		"target": archive,
		"filter": map[string]interface{}{"excludes": []interface{}{"skip.txt"}},
	})
	require.True(t, result.Success)
	assert.Equal(t, 1, result.Data["entries"])

	dst := filepath.Join(work, "restored")
	result = exec(t, p, "fspro.decompress", map[string]interface{}{"path": archive, "target": dst})
	require.True(t, result.Success)
	assert.FileExists(t, filepath.Join(dst, "a.txt"))
	assert.NoFileExists(t, filepath.Join(dst, "skip.txt"))
}

func TestTransferCommand(t *testing.T) {
	p := newTestProvider(t)
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.txt"), []byte("new"), 0o644))
	dst := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dst, "a.txt"), []byte("old"), 0o644))

	result := exec(t, p, "fspro.transfer", map[string]interface{}{
		"path":        src,
		"target":      dst,
		"on_conflict": "skip",
	})
	require.True(t, result.Success)
	assert.Equal(t, 0, result.Data["moved"])
	assert.Equal(t, 1, result.Data["skipped"])

	got, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(got))
}

func TestTransferBadPolicy(t *testing.T) {
	p := newTestProvider(t)
	result := exec(t, p, "fspro.transfer", map[string]interface{}{
		"path":        t.TempDir(),
		"target":      t.TempDir(),
		"on_conflict": "merge",
	})
	assert.False(t, result.Success)
}
