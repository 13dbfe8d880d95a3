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

import "fmt"

// bulkChunkSize is the number of entries a bulk operation processes between
// growth-budget checks.
const bulkChunkSize = 256

// PutMany inserts or updates a batch of entries, pairing keys[i] with
// values[i]. The result reports, per entry, whether it was newly inserted
// (true) or updated an existing entry (false), exactly as Put would have.
// PutMany panics if the two slices differ in length.
//
// The batch is equivalent to calling Put for each entry in order. The only
// observable difference is resize behavior: the growth budget is checked
// once per chunk of bulkChunkSize entries against everything still to be
// inserted, so the batch performs at most one resize, sized for the whole
// batch, instead of up to log2(len(keys)) incremental doublings.
func (m *Map[K, V]) PutMany(keys []K, values []V) []bool {
	if len(keys) != len(values) {
		panic(fmt.Sprintf("swiss: PutMany given %d keys but %d values", len(keys), len(values)))
	}

	inserted := make([]bool, len(keys))
	for chunk := 0; chunk < len(keys); chunk += bulkChunkSize {
		end := chunk + bulkChunkSize
		if end > len(keys) {
			end = len(keys)
		}
		// Every entry still to be processed consumes at most one unit of
		// growth budget, so after this check no later chunk can trigger a
		// second resize.
		if remaining := len(keys) - chunk; m.growthLeft < remaining {
			m.growToFit(m.used + remaining)
		}
		for i := chunk; i < end; i++ {
			inserted[i] = m.putSlot(keys[i], values[i])
		}
	}
	m.checkInvariants()
	return inserted
}

// GetMany looks up a batch of keys, returning the values and per-key
// presence. values[i] is the zero value of V where ok[i] is false.
func (m *Map[K, V]) GetMany(keys []K) (values []V, ok []bool) {
	values = make([]V, len(keys))
	ok = make([]bool, len(keys))
	for i := range keys {
		values[i], ok[i] = m.Get(keys[i])
	}
	return values, ok
}

// ContainsMany reports, per key, whether the map contains an entry for it.
func (m *Map[K, V]) ContainsMany(keys []K) []bool {
	ok := make([]bool, len(keys))
	for i := range keys {
		_, ok[i] = m.Get(keys[i])
	}
	return ok
}
