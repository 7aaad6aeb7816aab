// Package ident provides interned identifiers for the Frugurt runtime.
//
// An Ident is a compact handle computed from the identifier's text.
// Handles are comparable, hashable, and cheap to copy, so scopes,
// type descriptors, and operator keys can use them directly as map
// keys. A process-wide reverse table maps each handle back to its
// printable text for diagnostics.
package ident

import (
	"hash/fnv"
	"sync"
)

// Ident is an interned identifier handle. The zero value is not a
// valid identifier; obtain handles through New.
type Ident struct {
	hash uint64
}

var reverse = struct {
	sync.Mutex
	names map[uint64]string
}{names: map[uint64]string{}}

// New interns text and returns its handle. Interning is idempotent:
// the same text always yields the same Ident. Each call takes the
// reverse table's lock, as does String.
func New(text string) Ident {
	h := fnv.New64a()
	h.Write([]byte(text))
	hash := h.Sum64()

	reverse.Lock()
	if _, ok := reverse.names[hash]; !ok {
		reverse.names[hash] = text
	}
	reverse.Unlock()

	return Ident{hash: hash}
}

// String returns the printable text of the identifier. It is meant
// for diagnostics; an Ident that never went through New renders as
// "<unknown>".
func (i Ident) String() string {
	reverse.Lock()
	name, ok := reverse.names[i.hash]
	reverse.Unlock()
	if !ok {
		return "<unknown>"
	}
	return name
}

// Reset clears the reverse table. Tests use it to recover a clean
// table; handles created before the reset keep comparing equal but
// lose their printable text until re-interned.
func Reset() {
	reverse.Lock()
	reverse.names = map[uint64]string{}
	reverse.Unlock()
	registerOperators()
}
