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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestRuntimeHasher(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		h := getRuntimeHasher[string]()
		seed := makeSeed()
		k1, k2 := "foo", "bar"
		require.Equal(t,
			h(unsafe.Pointer(&k1), seed),
			h(unsafe.Pointer(&k1), seed))
		require.NotEqual(t,
			h(unsafe.Pointer(&k1), seed),
			h(unsafe.Pointer(&k2), seed))
		require.NotEqual(t,
			h(unsafe.Pointer(&k1), seed),
			h(unsafe.Pointer(&k1), seed+1))
	})

	t.Run("int", func(t *testing.T) {
		h := getRuntimeHasher[int]()
		seed := makeSeed()

		// The hashes of sequential keys should spread across the table.
		const count = 1024
		distinct := make(map[uintptr]struct{})
		for i := 0; i < count; i++ {
			distinct[h(unsafe.Pointer(&i), seed)] = struct{}{}
		}
		require.Greater(t, len(distinct), count/2)
	})
}
