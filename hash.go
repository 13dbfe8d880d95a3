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

import "github.com/cespare/xxhash/v2"

// StringHash hashes a string key with xxHash (XXH64). It is a WithHash
// replacement for the runtime hasher on string-keyed maps:
//
//	m := swiss.New[string, int](0, swiss.WithHash[string, int](swiss.StringHash))
//
// Unlike the runtime hasher, which is randomized per process, StringHash is
// a pure function of (key, seed). Pinning the seed with WithSeed gives key
// placement that is stable across runs and processes.
func StringHash(key *string, seed uintptr) uintptr {
	var d xxhash.Digest
	d.ResetWithSeed(uint64(seed))
	_, _ = d.WriteString(*key)
	return uintptr(d.Sum64())
}
