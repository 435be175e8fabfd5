// Package shape holds the value-semantics helpers shared by every model:
// nil-aware equality for optional fields and a field-by-field hasher.
//
// A nil pointer, slice or map is "absent". Absent is never equal to present,
// even when the present value is the zero value or an empty collection, so
// equality agrees with what ends up on the wire.
package shape

import (
	"encoding/binary"
	"slices"

	"github.com/cespare/xxhash/v2"
)

func StringEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func Int64Equal(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func BoolEqual(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// MapEqual compares two optional-value maps. Both nil-ness and each entry's
// nil-ness must match.
func MapEqual[V comparable](a, b map[string]*V) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return false
		}
		if av == nil || bv == nil {
			if av != bv {
				return false
			}
			continue
		}
		if *av != *bv {
			return false
		}
	}
	return true
}

// SliceEqual compares two record slices element-wise with eq; order matters.
func SliceEqual[T any](a, b []T, eq func(x, y T) bool) bool {
	if (a == nil) != (b == nil) || len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

const (
	absent  byte = 0
	present byte = 1
)

// Hasher accumulates an xxhash over a sequence of optional fields. Every
// field writes a presence marker first, so absent and zero never collide.
type Hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func NewHasher() *Hasher {
	return &Hasher{d: xxhash.New()}
}

func (h *Hasher) marker(ok bool) bool {
	if ok {
		_, _ = h.d.Write([]byte{present})
	} else {
		_, _ = h.d.Write([]byte{absent})
	}
	return ok
}

func (h *Hasher) writeString(s string) {
	binary.BigEndian.PutUint64(h.buf[:8], uint64(len(s)))
	_, _ = h.d.Write(h.buf[:8])
	_, _ = h.d.WriteString(s)
}

func (h *Hasher) String(v *string) *Hasher {
	if h.marker(v != nil) {
		h.writeString(*v)
	}
	return h
}

func (h *Hasher) Int64(v *int64) *Hasher {
	if h.marker(v != nil) {
		binary.BigEndian.PutUint64(h.buf[:8], uint64(*v))
		_, _ = h.d.Write(h.buf[:8])
	}
	return h
}

func (h *Hasher) Bool(v *bool) *Hasher {
	if h.marker(v != nil) {
		b := byte(0)
		if *v {
			b = 1
		}
		_, _ = h.d.Write([]byte{b})
	}
	return h
}

// Uint64 mixes in a nested record's hash. ok reports whether the record is
// present.
func (h *Hasher) Uint64(v uint64, ok bool) *Hasher {
	if h.marker(ok) {
		binary.BigEndian.PutUint64(h.buf[:8], v)
		_, _ = h.d.Write(h.buf[:8])
	}
	return h
}

// StringMap hashes map entries in key order.
func (h *Hasher) StringMap(m map[string]*string) *Hasher {
	if !h.marker(m != nil) {
		return h
	}
	for _, k := range sortedKeys(m) {
		h.writeString(k)
		h.String(m[k])
	}
	return h
}

// BoolMap hashes map entries in key order.
func (h *Hasher) BoolMap(m map[string]*bool) *Hasher {
	if !h.marker(m != nil) {
		return h
	}
	for _, k := range sortedKeys(m) {
		h.writeString(k)
		h.Bool(m[k])
	}
	return h
}

// Slice hashes each element with fn, in order.
func Slice[T any](h *Hasher, s []T, fn func(T) (uint64, bool)) *Hasher {
	if !h.marker(s != nil) {
		return h
	}
	binary.BigEndian.PutUint64(h.buf[:8], uint64(len(s)))
	_, _ = h.d.Write(h.buf[:8])
	for _, v := range s {
		h.Uint64(fn(v))
	}
	return h
}

func (h *Hasher) Sum64() uint64 {
	return h.d.Sum64()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
