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

// Package swiss is a Go implementation of Swiss Tables as described in
// https://abseil.io/about/design/swisstables. See also:
// https://faultlore.com/blah/hashbrown-tldr/.
//
// # Swiss Tables
//
// Swiss tables are open-addressing hash tables that keep a separate metadata
// array with 1 "control byte" per slot. A control byte records whether its
// slot is empty, deleted (a tombstone), or full, and for full slots it also
// caches a 7-bit tag taken from hash(key). Probing consults only the control
// bytes until a tag matches, so the common probe step touches one byte of
// metadata rather than a full key-value slot.
//
// The layout is N slots where N is a power of 2, plus N+probeWindow control
// bytes. The control bytes in [N, N+probeWindow) are padding that is
// permanently empty. The padding lets iteration load 8 control bytes at a
// time starting from any slot index without bounds checks; probe walks
// themselves always wrap through the index mask and never read the padding.
//
// Probing visits slots in a triangular sequence: starting from hash mod N,
// the i'th step advances i+1 positions further. For power-of-two N the
// sequence visits every slot exactly once before cycling. Lookup, insertion,
// deletion, and resize all walk the identical sequence; an empty control
// byte terminates a walk, while tombstones keep it going.
//
// Deletion marks the slot as a tombstone. Tombstones keep probe chains
// through them intact and are only reclaimed when the table grows: they
// count against the growth budget, so a table churning through deletes still
// rehashes into a larger, tombstone-free table rather than degrading into
// ever-longer probe chains.
//
// # Implementation
//
// The implementation follows the Abseil design in its metadata encoding and
// load-factor policy (the table grows at 7/8 occupancy), but probes slot by
// slot rather than group by group, trading the SIMD/SWAR group scan for a
// simpler engine with one probe path shared by every operation. An 8-byte
// SWAR scan survives in iteration, where it skips runs of non-full slots a
// word at a time.
//
// The backing arrays are owned, contiguously allocated buffers accessed
// through raw pointer arithmetic rather than Go slices. In order to support
// hashing of arbitrary keys, the hash function is extracted from the type
// descriptor of the Go runtime's map[K]struct{}.
//
// A Map maintains a version counter that is bumped by every structural
// mutation. Iterators capture the version when created and fail fast with a
// panic when they observe a stale version, turning iterate-while-mutate bugs
// into a deterministic report instead of undefined behavior.
package swiss

import (
	"fmt"
	"math/bits"
	"strings"
	"unsafe"
)

const (
	debug = false

	// probeWindow is the width in bytes of the word-at-a-time scans over the
	// control bytes, and therefore the amount of always-empty padding kept
	// beyond the last slot.
	probeWindow = 8

	minCapacity     = 4
	defaultCapacity = 16

	// The table is resized when it reaches loadFactorNum/loadFactorDen
	// occupancy, counting tombstones as occupied.
	loadFactorNum = 7
	loadFactorDen = 8

	ctrlEmpty   ctrl = 0b11111111
	ctrlDeleted ctrl = 0b10000000

	bitsetMSB = 0x8080808080808080
)

// Each slot in the hash table has a control byte which can have one of three
// states: empty, deleted, and full. They have the following bit patterns:
//
//	  empty: 1 1 1 1 1 1 1 1
//	deleted: 1 0 0 0 0 0 0 0
//	   full: 0 h h h h h h h  // h represents the h2 hash bits
//
// A slot is full iff the high bit of its control byte is unset, which makes
// the full-vs-skippable decision a single bit test and leaves the low 7 bits
// of a full byte holding the hash tag.
type ctrl uint8

// full reports whether the control byte marks a slot holding an entry.
func (c ctrl) full() bool {
	return c&0x80 == 0
}

// emptyOrDeleted reports whether the control byte marks a slot available for
// insertion.
func (c ctrl) emptyOrDeleted() bool {
	return c&0x80 != 0
}

// matchFull returns a bitset where each byte is 0x80 if the corresponding
// control byte in the 8-byte word starting at c marks a full slot (and 0x00
// otherwise).
func (c *ctrl) matchFull() bitset {
	v := *(*uint64)((unsafe.Pointer)(c))
	return bitset(^v & bitsetMSB)
}

// Slot holds a key and value.
type Slot[K comparable, V any] struct {
	key   K
	value V
}

// Map is an unordered map from keys to values with Put, Get, Delete, and
// iteration operations. It is inspired by Google's Swiss Tables design as
// implemented in Abseil's flat_hash_map. By default, a Map[K,V] uses the same
// hash function as Go's builtin map[K]V, though a different hash function can
// be specified using the WithHash option.
//
// A Map is NOT goroutine-safe. Callers must either serialize all access
// externally or partition keys across independently-owned Maps.
type Map[K comparable, V any] struct {
	// The hash function to apply to keys of type K. The hash function is
	// extracted from the Go runtime's implementation of map[K]struct{}
	// unless overridden by WithHash.
	hash hashFn
	seed uintptr
	// The allocator to use for the ctrls and slots slices.
	allocator Allocator[K, V]
	// ctrls is capacity+probeWindow in length. The bytes in
	// [capacity, capacity+probeWindow) are always ctrlEmpty.
	ctrls unsafeSlice[ctrl]
	// slots is capacity in length.
	slots unsafeSlice[Slot[K, V]]
	// The total number of slots (always a power of 2). capacity-1 is used
	// as a mask to quickly compute i%capacity using a bitwise & operation.
	capacity uintptr
	// The number of filled slots (i.e. the number of elements in the map).
	used int
	// The number of slots we can still fill without needing to resize.
	//
	// This is stored separately due to tombstones: we do not include
	// tombstones in the growth capacity because we'd like to rehash when the
	// table is filled with tombstones as otherwise probe sequences might get
	// unacceptably long without triggering a rehash.
	growthLeft int
	// version is incremented by every mutation that can move or remove
	// entries: inserts of new keys, deletes of present keys, Clear, Close,
	// and every resize. Updating the value of a present key does not bump
	// it. Iterators capture the version at creation and check it on every
	// step.
	version uint64
}

// New constructs a new Map with the specified initial capacity, rounded up
// to the next power of 2. If initialCapacity is 0 or negative a small
// default capacity is used. The zero value for a Map is not usable.
func New[K comparable, V any](initialCapacity int, options ...option[K, V]) *Map[K, V] {
	m := &Map[K, V]{
		hash:      getRuntimeHasher[K](),
		seed:      makeSeed(),
		allocator: defaultAllocator[K, V]{},
	}

	for _, op := range options {
		op.apply(m)
	}

	targetCapacity := uintptr(defaultCapacity)
	if initialCapacity > 0 {
		targetCapacity = nextPow2(uintptr(initialCapacity))
	}
	m.resize(targetCapacity)
	return m
}

// Close closes the map, releasing any memory back to its configured
// allocator. It is unnecessary to close a map using the default allocator.
// It is invalid to use a Map after it has been closed, though Close itself
// is idempotent.
func (m *Map[K, V]) Close() {
	if m.capacity > 0 {
		m.allocator.FreeSlots(m.slots.Slice(0, m.capacity))
		m.allocator.FreeControls(unsafeConvertSlice[uint8](m.ctrls.Slice(0, m.capacity+probeWindow)))
		m.capacity = 0
		m.used = 0
		m.growthLeft = 0
		m.ctrls = makeUnsafeSlice([]ctrl(nil))
		m.slots = makeUnsafeSlice([]Slot[K, V](nil))
		m.version++
	}
	m.allocator = nil
}

// Put inserts an entry into the map, overwriting an existing value if an
// entry with the same key already exists. It returns true if the entry was
// newly inserted, and false if an existing entry was updated.
func (m *Map[K, V]) Put(key K, value V) bool {
	// The growth decision is made before probing: a resize invalidates any
	// slot index found by an earlier walk, so an insertion slot may only be
	// searched for once the table is at its final capacity.
	if m.growthLeft == 0 {
		m.resize(2 * m.capacity)
	}
	inserted := m.putSlot(key, value)
	m.checkInvariants()
	return inserted
}

// putSlot inserts or updates an entry without checking the growth budget.
// The caller must have ensured growthLeft > 0.
func (m *Map[K, V]) putSlot(key K, value V) bool {
	h := m.hash(noescape(unsafe.Pointer(&key)), m.seed)
	tag := ctrl(h2(h))
	seq := makeProbeSeq(h1(h), m.capacity-1)
	if debug {
		fmt.Printf("put(%v): %s\n", key, seq)
	}

	// Walk the probe sequence remembering the first empty or deleted slot
	// seen: that is where a new entry goes. The walk cannot stop at a
	// tombstone, only at an empty slot, because the key may still be present
	// further along the chain and must be updated rather than duplicated.
	candidate := m.capacity
	for n := uintptr(0); ; n, seq = n+1, seq.next() {
		if n == m.capacity {
			panic(fmt.Sprintf("swiss: probe sequence visited every slot without finding an empty one\n%s",
				m.debugString()))
		}

		c := *m.ctrls.At(seq.offset)
		if c == tag {
			slot := m.slots.At(seq.offset)
			if key == slot.key {
				if debug {
					fmt.Printf("put(updating): index=%d key=%v\n", seq.offset, key)
				}
				slot.value = value
				return false
			}
		}
		if c.emptyOrDeleted() {
			if candidate == m.capacity {
				candidate = seq.offset
			}
			if c == ctrlEmpty {
				break
			}
		}
	}

	slot := m.slots.At(candidate)
	slot.key = key
	slot.value = value
	if *m.ctrls.At(candidate) == ctrlEmpty {
		// Filling a tombstone adds no new load on the probe chains, so only
		// claiming an empty slot consumes growth budget.
		m.growthLeft--
	}
	*m.ctrls.At(candidate) = tag
	m.used++
	m.version++
	if debug {
		fmt.Printf("put(inserting): index=%d used=%d growth-left=%d\n",
			candidate, m.used, m.growthLeft)
	}
	return true
}

// Get retrieves the value from the map for the specified key, returning
// ok=false if the key is not present.
func (m *Map[K, V]) Get(key K) (value V, ok bool) {
	// To find a key we compute hash(key) and construct a probeSeq from it
	// that visits every slot in some deterministic order. At each slot the
	// control byte is compared against the 7-bit tag h2(hash(key)); only on
	// a tag match is the full key comparison performed. An empty control
	// byte terminates the walk: an entry for the key further along the
	// sequence would have been inserted into that slot first. Tombstones
	// keep the walk going.
	//
	// The tag pre-filter makes false key comparisons rare: assuming h2 is
	// distributed uniformly, a non-matching slot passes the tag test with
	// probability 1/128, so nearly every full key comparison performed is
	// the one that succeeds.
	h := m.hash(noescape(unsafe.Pointer(&key)), m.seed)
	tag := ctrl(h2(h))
	seq := makeProbeSeq(h1(h), m.capacity-1)
	if debug {
		fmt.Printf("get(%v): %s\n", key, seq)
	}

	for n := uintptr(0); n < m.capacity; n, seq = n+1, seq.next() {
		c := *m.ctrls.At(seq.offset)
		if c == tag {
			slot := m.slots.At(seq.offset)
			if key == slot.key {
				return slot.value, true
			}
		}
		if c == ctrlEmpty {
			return value, false
		}
	}

	// The table always holds at least one empty slot, so a walk that visits
	// every slot without meeting one has read corrupted state.
	panic(fmt.Sprintf("swiss: probe sequence visited every slot without finding an empty one\n%s",
		m.debugString()))
}

// Contains reports whether the map contains an entry for key.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete deletes the entry corresponding to the specified key from the map,
// returning true if the entry was present. It is a noop to delete a
// non-existent key.
//
// Deleting leaves a tombstone in the slot so probe chains through it stay
// intact. Tombstones count against the growth budget: a delete does not earn
// back room for an insert, which bounds the total number of resizes over a
// map's lifetime regardless of churn.
func (m *Map[K, V]) Delete(key K) bool {
	h := m.hash(noescape(unsafe.Pointer(&key)), m.seed)
	tag := ctrl(h2(h))
	seq := makeProbeSeq(h1(h), m.capacity-1)
	if debug {
		fmt.Printf("delete(%v): %s\n", key, seq)
	}

	for n := uintptr(0); n < m.capacity; n, seq = n+1, seq.next() {
		c := *m.ctrls.At(seq.offset)
		if c == tag {
			slot := m.slots.At(seq.offset)
			if key == slot.key {
				// Zero the slot so any pointers held by the key or value
				// don't keep their referents live.
				*slot = Slot[K, V]{}
				*m.ctrls.At(seq.offset) = ctrlDeleted
				m.used--
				m.version++
				if debug {
					fmt.Printf("delete(%v): index=%d used=%d growth-left=%d\n",
						key, seq.offset, m.used, m.growthLeft)
				}
				m.checkInvariants()
				return true
			}
		}
		if c == ctrlEmpty {
			m.checkInvariants()
			return false
		}
	}

	panic(fmt.Sprintf("swiss: probe sequence visited every slot without finding an empty one\n%s",
		m.debugString()))
}

// Clear removes all entries from the map, retaining its current capacity.
func (m *Map[K, V]) Clear() {
	for i := uintptr(0); i < m.capacity+probeWindow; i++ {
		*m.ctrls.At(i) = ctrlEmpty
	}
	for i := uintptr(0); i < m.capacity; i++ {
		*m.slots.At(i) = Slot[K, V]{}
	}
	m.used = 0
	m.growthLeft = int((m.capacity * loadFactorNum) / loadFactorDen)
	m.version++
	m.checkInvariants()
}

// Reserve grows the map to a capacity of at least n slots, rehashing the
// current entries into the larger table. It is a noop if the map's capacity
// is already sufficient. Reserving ahead of a known insertion volume avoids
// the intermediate resizes that incremental doubling would perform.
func (m *Map[K, V]) Reserve(n int) {
	if n <= 0 {
		return
	}
	if c := nextPow2(uintptr(n)); c > m.capacity {
		m.resize(c)
	}
}

// All calls yield sequentially for each key and value present in the map. If
// yield returns false, All stops the iteration. All can be used directly as
// a range-over-function sequence:
//
//	for k, v := range m.All {
//	  fmt.Printf("%v: %v\n", k, v)
//	}
//
// The map can be mutated during the iteration, though there is no guarantee
// that the mutations will be visible to the iteration. This differs from
// Iter, which fails fast on any mutation.
func (m *Map[K, V]) All(yield func(key K, value V) bool) {
	// Snapshot the capacity, controls, and slots so that iteration remains
	// valid if the map is resized during iteration.
	capacity := m.capacity
	ctrls := m.ctrls
	slots := m.slots

	for i := uintptr(0); i < capacity; i++ {
		if ctrls.At(i).full() {
			s := slots.At(i)
			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.used
}

// Cap returns the total slot capacity of the map.
func (m *Map[K, V]) Cap() int {
	return int(m.capacity)
}

// resize replaces the backing arrays with freshly allocated ones of
// newCapacity slots and reinserts every entry of the table into them. The
// old arrays are released to the allocator only after the reinsertion walk
// completes. newCapacity must be a power of 2 at least as large as the
// current capacity; reinsertion drops tombstones, so a same-capacity resize
// rehashes in place.
func (m *Map[K, V]) resize(newCapacity uintptr) {
	if newCapacity < minCapacity {
		newCapacity = minCapacity
	}

	oldCtrls, oldSlots := m.ctrls, m.slots
	oldCapacity := m.capacity

	m.slots = makeUnsafeSlice(m.allocator.AllocSlots(int(newCapacity)))
	m.ctrls = makeUnsafeSlice(unsafeConvertSlice[ctrl](
		m.allocator.AllocControls(int(newCapacity + probeWindow))))
	for i := uintptr(0); i < newCapacity+probeWindow; i++ {
		*m.ctrls.At(i) = ctrlEmpty
	}

	m.capacity = newCapacity
	m.growthLeft = int((newCapacity * loadFactorNum) / loadFactorDen)
	m.version++

	if debug {
		fmt.Printf("resize: capacity=%d->%d growth-left=%d\n",
			oldCapacity, newCapacity, m.growthLeft)
	}

	// The hash is not cached alongside the entry; it is recomputed from the
	// stored key when reinserting.
	for i := uintptr(0); i < oldCapacity; i++ {
		if !oldCtrls.At(i).full() {
			continue
		}
		slot := oldSlots.At(i)
		h := m.hash(noescape(unsafe.Pointer(&slot.key)), m.seed)
		m.uncheckedPut(h, slot.key, slot.value)
	}

	if oldCapacity > 0 {
		m.allocator.FreeSlots(oldSlots.Slice(0, oldCapacity))
		m.allocator.FreeControls(unsafeConvertSlice[uint8](oldCtrls.Slice(0, oldCapacity+probeWindow)))
	}

	m.checkInvariants()
}

// growToFit resizes the map so that at least n entries fit within the
// growth budget of the new capacity. Since resizing drops tombstones, the
// new capacity can be computed from the live entry count alone, but it must
// still exceed the current capacity: resize only ever grows the table.
func (m *Map[K, V]) growToFit(n int) {
	newCapacity := capacityForEntries(n)
	if newCapacity <= m.capacity {
		newCapacity = 2 * m.capacity
	}
	m.resize(newCapacity)
}

// uncheckedPut inserts an entry known not to be in the table into the first
// empty or deleted slot of the key's probe sequence. Used by resize when
// reinserting entries, which cannot introduce duplicates and therefore has
// no need for the walk-to-empty protocol of putSlot.
func (m *Map[K, V]) uncheckedPut(h uintptr, key K, value V) {
	seq := makeProbeSeq(h1(h), m.capacity-1)
	if debug {
		fmt.Printf("uncheckedPut(%v): %s\n", key, seq)
	}

	for n := uintptr(0); n < m.capacity; n, seq = n+1, seq.next() {
		c := m.ctrls.At(seq.offset)
		if c.emptyOrDeleted() {
			slot := m.slots.At(seq.offset)
			slot.key = key
			slot.value = value
			if *c == ctrlEmpty {
				m.growthLeft--
			}
			*c = ctrl(h2(h))
			return
		}
	}

	panic(fmt.Sprintf("swiss: probe sequence visited every slot without finding an empty one\n%s",
		m.debugString()))
}

func (m *Map[K, V]) checkInvariants() {
	if invariants {
		if m.capacity > 0 {
			if m.capacity&(m.capacity-1) != 0 {
				panic(fmt.Sprintf("invariant failed: capacity %d is not a power of 2", m.capacity))
			}
			// Verify the padding control bytes are empty.
			for i := m.capacity; i < m.capacity+probeWindow; i++ {
				if c := *m.ctrls.At(i); c != ctrlEmpty {
					panic(fmt.Sprintf("invariant failed: padding ctrl(%d)=%02x is not empty\n%s",
						i, c, m.debugString()))
				}
			}

			// For every full slot, verify we can retrieve the key using Get.
			// Count the number of full, deleted, and empty slots.
			var used int
			var deleted int
			var empty int
			for i := uintptr(0); i < m.capacity; i++ {
				switch c := *m.ctrls.At(i); c {
				case ctrlDeleted:
					deleted++
				case ctrlEmpty:
					empty++
				default:
					if !c.full() {
						panic(fmt.Sprintf("invariant failed: ctrl(%d)=%02x is not a valid state\n%s",
							i, c, m.debugString()))
					}
					s := m.slots.At(i)
					if _, ok := m.Get(s.key); !ok {
						h := m.hash(noescape(unsafe.Pointer(&s.key)), m.seed)
						panic(fmt.Sprintf("invariant failed: slot(%d): %v not found [h2=%02x h1=%07x]\n%s",
							i, s.key, h2(h), h1(h), m.debugString()))
					}
					used++
				}
			}

			if used != m.used {
				panic(fmt.Sprintf("invariant failed: found %d used slots, but used count is %d\n%s",
					used, m.used, m.debugString()))
			}
			if empty == 0 {
				panic(fmt.Sprintf("invariant failed: no empty slot remains\n%s", m.debugString()))
			}

			growthLeft := int((m.capacity*loadFactorNum)/loadFactorDen) - m.used - deleted
			if growthLeft != m.growthLeft {
				panic(fmt.Sprintf("invariant failed: found %d growthLeft, but expected %d\n%s",
					m.growthLeft, growthLeft, m.debugString()))
			}
		}
	}
}

func (m *Map[K, V]) debugString() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "capacity=%d  used=%d  growth-left=%d\n", m.capacity, m.used, m.growthLeft)
	for i := uintptr(0); i < m.capacity+probeWindow; i++ {
		switch c := *m.ctrls.At(i); c {
		case ctrlEmpty:
			fmt.Fprintf(&buf, "  %4d: empty\n", i)
		case ctrlDeleted:
			fmt.Fprintf(&buf, "  %4d: deleted\n", i)
		default:
			if i < m.capacity {
				s := m.slots.At(i)
				h := m.hash(noescape(unsafe.Pointer(&s.key)), m.seed)
				fmt.Fprintf(&buf, "  %4d: %v [ctrl=%02x h2=%02x]\n", i, s.key, c, h2(h))
			} else {
				fmt.Fprintf(&buf, "  %4d: [ctrl=%02x]\n", i, c)
			}
		}
	}
	return buf.String()
}

type bitset uint64

// next returns the index of the first byte in the bitset with its high bit
// set. The result is only meaningful for a non-zero bitset.
func (b bitset) next() uintptr {
	return uintptr(bits.TrailingZeros64(uint64(b))) >> 3
}

// clear returns the bitset with the bit for byte i cleared.
func (b bitset) clear(i uintptr) bitset {
	return b &^ (bitset(0x80) << (i << 3))
}

// probeSeq maintains the state for a probe sequence that visits every slot
// in the table. The sequence is the triangular progression
//
//	p(i) := (i^2 + i)/2 + hash (mod capacity)
//
// stepped incrementally as p(0) = hash & mask, p(i+1) = (p(i) + i + 1) & mask.
// The sequence visits every slot exactly once when the capacity is a power of
// two, since (i^2+i)/2 is a bijection in Z/(2^m). See
// https://en.wikipedia.org/wiki/Quadratic_probing
type probeSeq struct {
	mask   uintptr
	offset uintptr
	index  uintptr
}

func makeProbeSeq(hash, mask uintptr) probeSeq {
	return probeSeq{
		mask:   mask,
		offset: hash & mask,
		index:  0,
	}
}

func (s probeSeq) next() probeSeq {
	s.index++
	s.offset = (s.offset + s.index) & s.mask
	return s
}

func (s probeSeq) String() string {
	return fmt.Sprintf("mask=%d offset=%d index=%d", s.mask, s.offset, s.index)
}

// Extracts the H1 portion of a hash: the 57 upper bits.
func h1(h uintptr) uintptr {
	return h >> 7
}

// Extracts the H2 portion of a hash: the 7 bits not used for h1.
//
// These are used as an occupied control byte.
func h2(h uintptr) uintptr {
	return h & 0x7f
}

// nextPow2 returns the smallest valid table capacity that is >= v.
func nextPow2(v uintptr) uintptr {
	if v <= minCapacity {
		return minCapacity
	}
	return uintptr(1) << bits.Len(uint(v-1))
}

// capacityForEntries returns the smallest valid table capacity whose growth
// budget admits n entries.
func capacityForEntries(n int) uintptr {
	return nextPow2((uintptr(n)*loadFactorDen + loadFactorNum - 1) / loadFactorNum)
}

// noescape hides a pointer from escape analysis.  noescape is
// the identity function but escape analysis doesn't think the
// output depends on the input.  noescape is inlined and currently
// compiles down to zero instructions.
// USE CAREFULLY!
//
//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}

// unsafeSlice provides semi-ergonomic limited slice-like functionality
// without bounds checking for fixed sized slices.
type unsafeSlice[T any] struct {
	ptr unsafe.Pointer
}

func makeUnsafeSlice[T any](s []T) unsafeSlice[T] {
	return unsafeSlice[T]{ptr: unsafe.Pointer(unsafe.SliceData(s))}
}

// At returns a pointer to the element at index i.
func (s unsafeSlice[T]) At(i uintptr) *T {
	var t T
	return (*T)(unsafe.Add(s.ptr, unsafe.Sizeof(t)*i))
}

// Slice returns a Go slice akin to slice[start:end] for a Go builtin slice.
func (s unsafeSlice[T]) Slice(start, end uintptr) []T {
	return unsafe.Slice((*T)(s.ptr), end)[start:end]
}

func unsafeConvertSlice[Dest any, Src any](s []Src) []Dest {
	return unsafe.Slice((*Dest)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}
