package rcslice

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
)

// NewBytes shares b as a full-range byte view under an atomic handle.
// Ownership of b transfers to the view.
func NewBytes(b []byte) *View[byte] {
	return NewView[byte](NewVector(b), All())
}

// String returns the viewed bytes as a string, copying them.
func String(v *View[byte]) string {
	return string(v.Data())
}

// UnsafeString returns the viewed bytes as a string without copying. The
// string aliases the container, so the caller must not free the view (or
// let the container shrink) while the string is live, and must never write
// through Mut afterward.
func UnsafeString(v *View[byte]) string {
	data := v.Data()
	if len(data) == 0 {
		return ""
	}
	return unsafe.String(&data[0], len(data))
}

// Sum64 hashes the viewed bytes with xxHash. Views that are Equal hash
// identically regardless of their windows or containers.
func Sum64(v *View[byte]) uint64 {
	return xxhash.Sum64(v.Data())
}
