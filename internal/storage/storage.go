// Package storage provides durable, namespaced key/value persistence for the
// client-side stores. Each namespace holds one serialized document and is
// isolated from the others.
package storage

import "errors"

var (
	// ErrNotFound indicates that nothing has been persisted under the
	// requested namespace.
	ErrNotFound = errors.New("storage: namespace not found")
	// ErrInvalidNamespace indicates an empty or malformed namespace.
	ErrInvalidNamespace = errors.New("storage: invalid namespace")
)

// Storage defines the persistence operations the stores rely on. Reads and
// writes are idempotent; a Write fully replaces the previous document.
type Storage interface {
	Read(namespace string) ([]byte, error)
	Write(namespace string, data []byte) error
	Delete(namespace string) error
}
