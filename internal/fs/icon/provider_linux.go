//go:build linux

package icon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// themeProvider resolves icons from installed freedesktop icon themes.
// Lookup is a best-effort scan of the hicolor and Adwaita trees under
// the XDG data dirs; anything missing falls through to ErrNoIcon so
// the generic glyph takes over.
type themeProvider struct{}

func platformProvider() Provider {
	return themeProvider{}
}

func (themeProvider) Lookup(path string, isDir bool, size int) (image.Image, error) {
	for _, name := range iconNames(path, isDir) {
		if file := findThemeIcon(name, size); file != "" {
			img, err := imaging.Open(file)
			if err == nil {
				return img, nil
			}
		}
	}
	return nil, ErrNoIcon
}

// iconNames lists candidate freedesktop icon names for path, most
// specific first, following the freedesktop icon naming convention for MIME types.
func iconNames(path string, isDir bool) []string {
	if isDir {
		return []string{"folder", "inode-directory"}
	}
	names := []string{}
	if mt, err := mimetype.DetectFile(path); err == nil {
		mime := mt.String()
		if i := strings.IndexByte(mime, ';'); i >= 0 {
			mime = mime[:i]
		}
		names = append(names, strings.ReplaceAll(mime, "/", "-"))
		if slash := strings.IndexByte(mime, '/'); slash > 0 {
			names = append(names, mime[:slash]+"-x-generic")
		}
	}
	return append(names, "text-x-generic", "unknown")
}

// findThemeIcon walks the theme search path for a PNG matching name at
// or above the requested size. Scalable (SVG) entries are skipped; the
// raster fallback sizes cover everything the extractor hands out.
func findThemeIcon(name string, size int) string {
	sizes := candidateSizes(size)
	for _, base := range themeDirs() {
		for _, theme := range []string{"hicolor", "Adwaita"} {
			for _, px := range sizes {
				for _, kind := range []string{"mimetypes", "places"} {
					p := filepath.Join(base, theme, fmt.Sprintf("%dx%d", px, px), kind, name+".png")
					if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
						return p
					}
				}
			}
		}
	}
	return ""
}

// candidateSizes orders the standard raster sizes by fitness: the
// smallest size not below the request first, then larger, then the
// remainder descending.
func candidateSizes(size int) []int {
	std := []int{16, 22, 24, 32, 48, 64, 128, 256, 512}
	var up, down []int
	for _, s := range std {
		if s >= size {
			up = append(up, s)
		} else {
			down = append(down, s)
		}
	}
	for i, j := 0, len(down)-1; i < j; i, j = i+1, j-1 {
		down[i], down[j] = down[j], down[i]
	}
	return append(up, down...)
}

func themeDirs() []string {
	dirs := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "icons"))
	}
	data := os.Getenv("XDG_DATA_DIRS")
	if data == "" {
		data = "/usr/local/share:/usr/share"
	}
	for _, d := range strings.Split(data, ":") {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "icons"))
		}
	}
	return dirs
}
