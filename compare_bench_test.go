package swiss

// Single-goroutine comparison against other map implementations. The
// concurrent maps (xsync.Map, pb.MapOf) pay for their synchronization even
// when uncontended, so these numbers show the cost of thread safety a caller
// avoids by using a Map with external partitioning.

import (
	"runtime"
	"testing"

	"github.com/llxisdsh/pb"
	"github.com/puzpuzpuz/xsync/v4"
)

const (
	compareStore = 1_000_000
	compareLoad  = 1_000_000
)

func compareMix(i int) int {
	return i & (8 - 1)
}

// ------------------------------------------------------

func BenchmarkCompareStore_swissMap(b *testing.B) {
	b.ReportAllocs()
	m := New[int, int](0)
	runtime.GC()
	b.ResetTimer()
	var i int
	for range b.N {
		m.Put(i, i)
		i++
		if i >= compareStore {
			i = 0
		}
	}
}

func BenchmarkCompareLoad_swissMap(b *testing.B) {
	b.ReportAllocs()
	m := New[int, int](0)
	for i := 0; i < compareLoad; i++ {
		m.Put(i, i)
	}
	runtime.GC()
	b.ResetTimer()
	var i int
	for range b.N {
		_, _ = m.Get(i)
		i++
		if i >= compareLoad {
			i = 0
		}
	}
}

func BenchmarkCompareMixed_swissMap(b *testing.B) {
	b.ReportAllocs()
	m := New[int, int](0)
	for i := 0; i < compareLoad; i++ {
		m.Put(i, i)
	}
	runtime.GC()

	b.ResetTimer()
	var i int
	for range b.N {
		switch compareMix(i) {
		case 0:
			m.Put(i, i)
		case 1:
			m.Delete(i)
		case 2:
			if !m.Contains(i) {
				m.Put(i, i)
			}
		default:
			_, _ = m.Get(i)
		}
		i++
		if i >= compareLoad<<1 {
			i = 0
		}
	}
}

// ------------------------------------------------------

func BenchmarkCompareStore_stdMap(b *testing.B) {
	b.ReportAllocs()
	m := make(map[int]int)
	runtime.GC()
	b.ResetTimer()
	var i int
	for range b.N {
		m[i] = i
		i++
		if i >= compareStore {
			i = 0
		}
	}
}

func BenchmarkCompareLoad_stdMap(b *testing.B) {
	b.ReportAllocs()
	m := make(map[int]int)
	for i := 0; i < compareLoad; i++ {
		m[i] = i
	}
	runtime.GC()
	b.ResetTimer()
	var i int
	for range b.N {
		_, _ = m[i]
		i++
		if i >= compareLoad {
			i = 0
		}
	}
}

func BenchmarkCompareMixed_stdMap(b *testing.B) {
	b.ReportAllocs()
	m := make(map[int]int)
	for i := 0; i < compareLoad; i++ {
		m[i] = i
	}
	runtime.GC()

	b.ResetTimer()
	var i int
	for range b.N {
		switch compareMix(i) {
		case 0:
			m[i] = i
		case 1:
			delete(m, i)
		case 2:
			if _, ok := m[i]; !ok {
				m[i] = i
			}
		default:
			_, _ = m[i]
		}
		i++
		if i >= compareLoad<<1 {
			i = 0
		}
	}
}

// ------------------------------------------------------

func BenchmarkCompareStore_xsync_MapOf(b *testing.B) {
	b.ReportAllocs()
	m := xsync.NewMap[int, int]()
	runtime.GC()
	b.ResetTimer()
	var i int
	for range b.N {
		m.Store(i, i)
		i++
		if i >= compareStore {
			i = 0
		}
	}
}

func BenchmarkCompareLoad_xsync_MapOf(b *testing.B) {
	b.ReportAllocs()
	m := xsync.NewMap[int, int]()
	for i := 0; i < compareLoad; i++ {
		m.Store(i, i)
	}
	runtime.GC()
	b.ResetTimer()
	var i int
	for range b.N {
		_, _ = m.Load(i)
		i++
		if i >= compareLoad {
			i = 0
		}
	}
}

func BenchmarkCompareMixed_xsync_MapOf(b *testing.B) {
	b.ReportAllocs()
	m := xsync.NewMap[int, int]()
	for i := 0; i < compareLoad; i++ {
		m.Store(i, i)
	}
	runtime.GC()

	b.ResetTimer()
	var i int
	for range b.N {
		switch compareMix(i) {
		case 0:
			m.Store(i, i)
		case 1:
			m.Delete(i)
		case 2:
			_, _ = m.LoadOrStore(i, i)
		default:
			_, _ = m.Load(i)
		}
		i++
		if i >= compareLoad<<1 {
			i = 0
		}
	}
}

// ------------------------------------------------------

func BenchmarkCompareStore_pb_MapOf(b *testing.B) {
	b.ReportAllocs()
	var m pb.MapOf[int, int]
	runtime.GC()
	b.ResetTimer()
	var i int
	for range b.N {
		m.Store(i, i)
		i++
		if i >= compareStore {
			i = 0
		}
	}
}

func BenchmarkCompareLoad_pb_MapOf(b *testing.B) {
	b.ReportAllocs()
	var m pb.MapOf[int, int]
	for i := 0; i < compareLoad; i++ {
		m.Store(i, i)
	}
	runtime.GC()
	b.ResetTimer()
	var i int
	for range b.N {
		_, _ = m.Load(i)
		i++
		if i >= compareLoad {
			i = 0
		}
	}
}

func BenchmarkCompareMixed_pb_MapOf(b *testing.B) {
	b.ReportAllocs()
	var m pb.MapOf[int, int]
	for i := 0; i < compareLoad; i++ {
		m.Store(i, i)
	}
	runtime.GC()

	b.ResetTimer()
	var i int
	for range b.N {
		switch compareMix(i) {
		case 0:
			m.Store(i, i)
		case 1:
			m.Delete(i)
		case 2:
			_, _ = m.LoadOrStore(i, i)
		default:
			_, _ = m.Load(i)
		}
		i++
		if i >= compareLoad<<1 {
			i = 0
		}
	}
}
