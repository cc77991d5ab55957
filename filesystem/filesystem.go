// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// Every component that touches disk (downloader, metadata writer, caches) goes
// through API() so that tests can swap in an in-memory backend.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetBackend replaces the active filesystem backend with an arbitrary afero implementation.
func SetBackend(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	SetBackend(afero.NewOsFs())
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing and CI environments.
func SetMemMapFs() {
	SetBackend(afero.NewMemMapFs())
}
