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

	"github.com/stretchr/testify/require"
)

func drain[K comparable, V any](t *testing.T, it *Iterator[K, V]) map[K]V {
	r := make(map[K]V)
	for it.Next() {
		_, dup := r[it.Key()]
		require.False(t, dup, "key %v yielded twice", it.Key())
		r[it.Key()] = it.Value()
	}
	return r
}

func TestIter(t *testing.T) {
	m := New[int, int](0)
	defer m.Close()
	e := make(map[int]int)
	for i := 0; i < 100; i++ {
		m.Put(i, i*2)
		e[i] = i * 2
	}

	require.Equal(t, e, drain(t, m.Iter()))
}

func TestIterEmpty(t *testing.T) {
	m := New[int, int](0)
	defer m.Close()

	it := m.Iter()
	require.False(t, it.Next())
	require.False(t, it.Next())
}

func TestIterExhausted(t *testing.T) {
	m := New[int, int](0)
	defer m.Close()
	for i := 0; i < 10; i++ {
		m.Put(i, i)
	}

	it := m.Iter()
	require.Equal(t, 10, len(drain(t, it)))
	require.False(t, it.Next())
	require.False(t, it.Next())
}

func TestIterSkipsTombstones(t *testing.T) {
	m := New[int, int](0)
	defer m.Close()
	e := make(map[int]int)
	for i := 0; i < 100; i++ {
		m.Put(i, i)
		e[i] = i
	}
	for i := 0; i < 100; i += 2 {
		m.Delete(i)
		delete(e, i)
	}

	require.Equal(t, e, drain(t, m.Iter()))
}

func TestIterSmallTable(t *testing.T) {
	// A capacity 4 table exercises the word-at-a-time control scan right up
	// against the end of the slot array.
	m := New[int, int](1)
	defer m.Close()
	require.EqualValues(t, 4, m.Cap())
	e := make(map[int]int)
	for i := 0; i < 3; i++ {
		m.Put(i, i)
		e[i] = i
	}
	require.EqualValues(t, 4, m.Cap())

	require.Equal(t, e, drain(t, m.Iter()))
}

func TestIterStale(t *testing.T) {
	const stale = "swiss: map modified during iteration"

	newIter := func(t *testing.T) (*Map[int, int], *Iterator[int, int]) {
		m := New[int, int](0)
		t.Cleanup(m.Close)
		for i := 0; i < 100; i++ {
			m.Put(i, i)
		}
		it := m.Iter()
		require.True(t, it.Next())
		return m, it
	}

	t.Run("insert", func(t *testing.T) {
		m, it := newIter(t)
		m.Put(1000, 1000)
		require.PanicsWithValue(t, stale, func() { it.Next() })
	})

	t.Run("delete", func(t *testing.T) {
		m, it := newIter(t)
		m.Delete(0)
		require.PanicsWithValue(t, stale, func() { it.Next() })
	})

	t.Run("clear", func(t *testing.T) {
		m, it := newIter(t)
		m.Clear()
		require.PanicsWithValue(t, stale, func() { it.Next() })
	})

	t.Run("reserve", func(t *testing.T) {
		m, it := newIter(t)
		m.Reserve(4 * m.Cap())
		require.PanicsWithValue(t, stale, func() { it.Next() })
	})

	t.Run("close", func(t *testing.T) {
		m, it := newIter(t)
		m.Close()
		require.PanicsWithValue(t, stale, func() { it.Next() })
	})

	// Updating an existing key's value is not a structural mutation and
	// does not invalidate cursors.
	t.Run("update", func(t *testing.T) {
		m, it := newIter(t)
		m.Put(0, -1)
		seen := 1
		for it.Next() {
			seen++
		}
		require.Equal(t, 100, seen)
	})

	// Neither does deleting a key that isn't present.
	t.Run("delete-missing", func(t *testing.T) {
		m, it := newIter(t)
		require.False(t, m.Delete(1000))
		seen := 1
		for it.Next() {
			seen++
		}
		require.Equal(t, 100, seen)
	})
}

func TestIterKeyValue(t *testing.T) {
	m := New[string, int](0)
	defer m.Close()
	m.Put("a", 1)

	it := m.Iter()
	require.True(t, it.Next())
	require.Equal(t, "a", it.Key())
	require.Equal(t, 1, it.Value())
	require.False(t, it.Next())
}

func TestAllEarlyExit(t *testing.T) {
	m := New[int, int](0)
	defer m.Close()
	for i := 0; i < 100; i++ {
		m.Put(i, i)
	}

	seen := 0
	m.All(func(k, v int) bool {
		seen++
		return seen < 10
	})
	require.Equal(t, 10, seen)
}
