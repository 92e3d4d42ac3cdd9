// Package repositories holds the collection-level data access used by the
// controllers. Each entity gets an interface plus a mongo-backed
// implementation; handlers are tested against in-memory fakes of the
// interfaces.
package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")
