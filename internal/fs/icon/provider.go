package icon

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"strings"
)

// ErrNoIcon is returned by a Provider when the platform has no icon
// for the path; the caller falls back to the glyph renderer.
var ErrNoIcon = errors.New("icon: no platform icon")

// Provider resolves a platform-native icon image for a path.
type Provider interface {
	// Lookup returns an icon image for path at roughly the requested
	// size. ErrNoIcon means the platform has nothing for this path.
	Lookup(path string, isDir bool, size int) (image.Image, error)
}

// extPalette colors the document glyph by extension family so files of
// different kinds are distinguishable at a glance.
var extPalette = map[string]color.NRGBA{
	"go":   {0x00, 0xad, 0xd8, 0xff},
	"rs":   {0xde, 0x6b, 0x3c, 0xff},
	"py":   {0x36, 0x72, 0xa4, 0xff},
	"js":   {0xf0, 0xdb, 0x4f, 0xff},
	"ts":   {0x31, 0x78, 0xc6, 0xff},
	"json": {0x8a, 0x8a, 0x8a, 0xff},
	"md":   {0x4a, 0x4a, 0x4a, 0xff},
	"png":  {0x6c, 0xa0, 0x6c, 0xff},
	"jpg":  {0x6c, 0xa0, 0x6c, 0xff},
	"gif":  {0x6c, 0xa0, 0x6c, 0xff},
	"pdf":  {0xc0, 0x3a, 0x2b, 0xff},
	"zip":  {0xa8, 0x7c, 0x3a, 0xff},
	"gz":   {0xa8, 0x7c, 0x3a, 0xff},
	"tar":  {0xa8, 0x7c, 0x3a, 0xff},
}

var (
	folderBody = color.NRGBA{0xf2, 0xc1, 0x4e, 0xff}
	folderTab  = color.NRGBA{0xe0, 0xaa, 0x2e, 0xff}
	pageBody   = color.NRGBA{0xfa, 0xfa, 0xfa, 0xff}
	pageEdge   = color.NRGBA{0xb0, 0xb0, 0xb0, 0xff}
)

// renderGlyph draws a built-in file or folder pictogram at the given
// edge length. It never fails, which keeps the extractor total.
func renderGlyph(isDir bool, ext string, size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	if isDir {
		drawFolder(img, size)
	} else {
		drawFile(img, size, strings.ToLower(ext))
	}
	return img
}

func drawFolder(img *image.NRGBA, size int) {
	u := size / 8
	// Tab across the top third of the width, then the body below it.
	fill(img, image.Rect(u, u, u+3*u, 2*u), folderTab)
	fill(img, image.Rect(u, 2*u, size-u, size-u), folderBody)
}

func drawFile(img *image.NRGBA, size int, ext string) {
	u := size / 8
	fill(img, image.Rect(2*u, u, size-2*u, size-u), pageBody)
	// Dog-ear in the top-right corner.
	fill(img, image.Rect(size-3*u, u, size-2*u, 2*u), pageEdge)
	accent, ok := extPalette[ext]
	if !ok {
		accent = pageEdge
	}
	// Accent band near the foot of the page.
	fill(img, image.Rect(2*u, size-3*u, size-2*u, size-2*u), accent)
}

func fill(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}
