// Package icon extracts a PNG icon representing a filesystem path.
//
// Resolution is a chain: a platform provider (desktop icon theme on
// Linux) is consulted first, and a built-in glyph renderer covers
// everything the platform cannot. The resulting image is fitted onto a
// square transparent canvas of the requested size and cached on disk,
// keyed by the source path and size, so repeated lookups are a stat.
package icon

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"

	"github.com/GriffinCanCode/FSPro/backend/internal/fs"
)

// DefaultSize is the edge length used when the caller does not ask for
// a specific one.
const DefaultSize = 32

var (
	defaultCacheOnce sync.Once
	defaultCachePath string
)

// DefaultCachePath returns the directory icons are cached under when
// no explicit destination is given. It prefers the user cache dir and
// falls back to the system temp dir.
func DefaultCachePath() string {
	defaultCacheOnce.Do(func() {
		base, err := os.UserCacheDir()
		if err != nil {
			base = os.TempDir()
		}
		defaultCachePath = filepath.Join(base, "fspro", "icons")
	})
	return defaultCachePath
}

// Extractor resolves and caches path icons.
type Extractor struct {
	cacheDir string
	provider Provider
	onHit    func()
}

// OnCacheHit registers fn to run each time a cached icon is reused
// instead of rendered.
func (e *Extractor) OnCacheHit(fn func()) {
	e.onHit = fn
}

// New returns an Extractor caching under cacheDir. An empty cacheDir
// selects DefaultCachePath.
func New(cacheDir string) *Extractor {
	if cacheDir == "" {
		cacheDir = DefaultCachePath()
	}
	return &Extractor{
		cacheDir: cacheDir,
		provider: platformProvider(),
	}
}

// Icon returns the filesystem location of a size x size PNG icon for
// path. When savePath is empty the icon lands in the extractor's cache
// and cached results are reused; a non-empty savePath forces a fresh
// render to exactly that file. A missing path still yields an icon:
// the generic glyph is rendered from the name alone.
func (e *Extractor) Icon(path string, size int, savePath string) (string, error) {
	if size <= 0 {
		size = DefaultSize
	}
	var exists, isDir bool
	if info, err := os.Stat(path); err == nil {
		exists, isDir = true, info.IsDir()
	} else if !os.IsNotExist(err) {
		return "", fs.NewError(fs.KindIO, "icon", path, err)
	}

	dst := savePath
	if dst == "" {
		dst = filepath.Join(e.cacheDir, e.cacheName(path, size))
		if _, err := os.Stat(dst); err == nil {
			if e.onHit != nil {
				e.onHit()
			}
			return dst, nil
		}
	}

	var src image.Image
	if exists {
		if img, err := e.provider.Lookup(path, isDir, size); err == nil {
			src = img
		}
	}
	if src == nil {
		src = renderGlyph(isDir, fs.Extname(path), size)
	}

	canvas := fit(src, size)
	if err := writePNG(dst, canvas); err != nil {
		return "", err
	}
	return dst, nil
}

// cacheName derives a stable cache filename from the absolute path and
// requested size.
func (e *Extractor) cacheName(path string, size int) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	sum := xxh3.HashString(fmt.Sprintf("%s:%d", abs, size))
	return fmt.Sprintf("%016x_%d.png", sum, size)
}

// fit scales img to fill as much of a size x size square as possible
// without distortion and centers it on a transparent canvas, so the
// output is always exactly square.
func fit(img image.Image, size int) *image.NRGBA {
	scaled := imaging.Fit(img, size, size, imaging.Lanczos)
	canvas := imaging.New(size, size, image.Transparent)
	bounds := scaled.Bounds()
	offset := image.Pt((size-bounds.Dx())/2, (size-bounds.Dy())/2)
	return imaging.Paste(canvas, scaled, offset)
}

// writePNG encodes img to dst atomically via a temp file rename.
func writePNG(dst string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fs.NewError(fs.KindIO, "icon", dst, err)
	}
	tmp := dst + "." + uuid.NewString() + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return fs.NewError(fs.KindIO, "icon", tmp, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		os.Remove(tmp)
		return fs.NewError(fs.KindIO, "icon", tmp, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fs.NewError(fs.KindIO, "icon", tmp, err)
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return fs.NewError(fs.KindIO, "icon", dst, err)
	}
	return nil
}
