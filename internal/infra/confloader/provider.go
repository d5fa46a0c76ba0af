// Package confloader provides configuration loading mechanism.
package confloader

import "errors"

// ErrReadBytesNotSupported is returned when ReadBytes is called on the map
// provider, which has no byte form.
var ErrReadBytesNotSupported = errors.New("confloader: map provider has no byte form, use Read()")

// mapProvider feeds an already-parsed settings map into koanf. LoadMap uses
// it for test fixtures and programmatic overrides, where going through a
// serialized format would be a detour.
//
// koanf providers implement either ReadBytes (raw config to be parsed) or
// Read (pre-parsed map); a map only has the latter.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, ErrReadBytesNotSupported
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
