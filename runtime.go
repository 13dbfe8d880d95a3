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

import (
	"math/rand/v2"
	"unsafe"
)

// hashFn is the signature of the hash functions the runtime attaches to map
// types: hash the object at p using the given seed.
type hashFn func(p unsafe.Pointer, seed uintptr) uintptr

// getRuntimeHasher returns the hash function the Go runtime itself uses for
// a map keyed by K, pulled out of the type descriptor of map[K]struct{}.
// This might break in a future version of Go, but is likely fixable unless
// the runtime does something drastic with its type layouts.
func getRuntimeHasher[K comparable]() hashFn {
	var m map[K]struct{}
	a := any(m)
	return (*mapTypeDescriptor)((*eface)(unsafe.Pointer(&a)).typ).hasher
}

// makeSeed returns a random seed for a map's hash function. Each map gets
// its own seed so that probe-sequence collisions in one map say nothing
// about another.
func makeSeed() uintptr {
	return uintptr(rand.Uint64())
}

// eface is the memory layout of an empty interface value.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// typeDescriptor mirrors the runtime's type descriptor (internal/abi.Type).
type typeDescriptor struct {
	size       uintptr
	ptrBytes   uintptr
	hash       uint32
	tflag      uint8
	align      uint8
	fieldAlign uint8
	kind       uint8
	equal      func(unsafe.Pointer, unsafe.Pointer) bool
	gcData     *byte
	str        int32
	ptrToThis  int32
}

// mapTypeDescriptor mirrors the runtime's map type descriptor. The hasher
// field sits after three type pointers in both the legacy bucket layout
// (key, elem, bucket) and the group layout (key, elem, group) that the
// runtime's own map moved to in Go 1.24, so the extraction holds on either.
type mapTypeDescriptor struct {
	typ    typeDescriptor
	key    *typeDescriptor
	elem   *typeDescriptor
	group  *typeDescriptor
	hasher hashFn
}
