// Copyright 2026 The Probekit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package swiss

// Iterator is a cursor over the entries of a Map. Entries are yielded in an
// unspecified order. The cursor captures the map's version when created:
// structurally mutating the map (inserting a new key, deleting, clearing,
// closing, or resizing) invalidates every live cursor, and a subsequent
// Next call on one panics. Updating the value of an existing key does not
// invalidate cursors.
type Iterator[K comparable, V any] struct {
	m       *Map[K, V]
	version uint64
	// offset is the next slot index to examine.
	offset uintptr
	// yielded counts entries returned so far; length is the map's size when
	// the cursor was created. Iteration ends once yielded reaches length,
	// which spares the cursor from scanning a mostly-empty tail.
	yielded int
	length  int
	slot    *Slot[K, V]
}

// Iter returns a cursor positioned before the first entry of the map.
func (m *Map[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{
		m:       m,
		version: m.version,
		length:  m.used,
	}
}

// Next advances the cursor to the next entry, returning false when the map
// is exhausted. Next panics if the map has been structurally mutated since
// the cursor was created.
func (it *Iterator[K, V]) Next() bool {
	m := it.m
	if it.version != m.version {
		panic("swiss: map modified during iteration")
	}
	if it.yielded == it.length {
		it.slot = nil
		return false
	}

	// Scan the control bytes 8 at a time for full slots. A load never reads
	// past the control buffer: offset is at most capacity-1 here and the
	// buffer extends probeWindow bytes beyond the last slot. The padding
	// bytes are permanently empty, so they can't produce a match.
	for it.offset < m.capacity {
		match := m.ctrls.At(it.offset).matchFull()
		if match == 0 {
			it.offset += probeWindow
			continue
		}
		i := it.offset + match.next()
		it.offset = i + 1
		it.slot = m.slots.At(i)
		it.yielded++
		return true
	}

	it.slot = nil
	return false
}

// Key returns the key of the current entry. It must only be called after a
// call to Next has returned true.
func (it *Iterator[K, V]) Key() K {
	return it.slot.key
}

// Value returns the value of the current entry. It must only be called
// after a call to Next has returned true.
func (it *Iterator[K, V]) Value() V {
	return it.slot.value
}
