// Package repository holds the store-facing interfaces and their
// MongoDB implementations. Sentinel errors defined here let the
// service layer distinguish failure cases without inspecting driver
// error types.
package repository

import "errors"

// ErrNotFound is returned when a lookup matches no document. Services
// translate it into their own not-found errors at the boundary.
var ErrNotFound = errors.New("not found")
