//go:build !linux

package icon

import "image"

// nullProvider is used where no platform lookup is implemented; every
// path renders through the built-in glyphs.
type nullProvider struct{}

func platformProvider() Provider {
	return nullProvider{}
}

func (nullProvider) Lookup(string, bool, int) (image.Image, error) {
	return nil, ErrNoIcon
}
