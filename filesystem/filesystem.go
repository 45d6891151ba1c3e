// Package filesystem wraps every disk access kipdayo makes, so tests can run
// against an in-memory tree.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the real filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Remove deletes path if it exists and reports whether anything was removed.
func Remove(path string) (bool, error) {
	exists, err := backend.Exists(path)
	if err != nil || !exists {
		return false, err
	}
	return true, backend.RemoveAll(path)
}
