package xwlru

import (
	"strconv"
	"testing"

	"github.com/dgraph-io/ristretto/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const benchKeySpace = 1024

func benchKeys() []string {
	keys := make([]string, benchKeySpace)
	for i := range keys {
		keys[i] = "bench_key_" + strconv.Itoa(i)
	}
	return keys
}

func BenchmarkCache_Put(b *testing.B) {
	cache, err := New[string, int64](Config{Capacity: benchKeySpace / 2})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	keys := benchKeys()

	b.ReportAllocs()
	i := 0
	for n := 0; n < b.N; n++ {
		_, _, _ = cache.Put(keys[i%benchKeySpace], int64(i))
		i++
	}
}

func BenchmarkCache_Get(b *testing.B) {
	cache, err := New[string, int64](Config{Capacity: benchKeySpace})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	keys := benchKeys()
	for i, k := range keys {
		_, _, _ = cache.Put(k, int64(i))
	}

	b.ReportAllocs()
	i := 0
	for n := 0; n < b.N; n++ {
		cache.Get(keys[i%benchKeySpace])
		i++
	}
}

func BenchmarkCache_Mixed(b *testing.B) {
	cache, err := New[string, int64](Config{Capacity: benchKeySpace / 2})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	keys := benchKeys()

	b.ReportAllocs()
	i := 0
	for n := 0; n < b.N; n++ {
		k := keys[i%benchKeySpace]
		if i%4 == 0 {
			_, _, _ = cache.Put(k, int64(i))
		} else {
			cache.Get(k)
		}
		i++
	}
}

func BenchmarkCache_PutWithEviction(b *testing.B) {
	// 预算远小于键空间，几乎每次写入都触发淘汰
	cache, err := New[string, int64](Config{Capacity: 16})
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	keys := benchKeys()

	b.ReportAllocs()
	i := 0
	for n := 0; n < b.N; n++ {
		_, _, _ = cache.Put(keys[i%benchKeySpace], int64(i))
		i++
	}
}

// 与常见 LRU 实现的横向对比。语义并不等价：
// hashicorp/golang-lru 按条目数限额且分片前提不同，
// ristretto 的写入经过准入采样、异步生效。数据仅供量级参考。

func BenchmarkComparison_Get(b *testing.B) {
	keys := benchKeys()

	b.Run("xwlru", func(b *testing.B) {
		cache, err := New[string, int64](Config{Capacity: benchKeySpace})
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for i, k := range keys {
			_, _, _ = cache.Put(k, int64(i))
		}

		b.ReportAllocs()
		i := 0
		for n := 0; n < b.N; n++ {
			cache.Get(keys[i%benchKeySpace])
			i++
		}
	})

	b.Run("hashicorp", func(b *testing.B) {
		cache, err := lru.New[string, int64](benchKeySpace)
		if err != nil {
			b.Fatalf("lru.New failed: %v", err)
		}
		for i, k := range keys {
			cache.Add(k, int64(i))
		}

		b.ReportAllocs()
		i := 0
		for n := 0; n < b.N; n++ {
			cache.Get(keys[i%benchKeySpace])
			i++
		}
	})

	b.Run("ristretto", func(b *testing.B) {
		cache, err := ristretto.NewCache(&ristretto.Config[string, int64]{
			NumCounters: benchKeySpace * 10,
			MaxCost:     benchKeySpace,
			BufferItems: 64,
		})
		if err != nil {
			b.Fatalf("ristretto.NewCache failed: %v", err)
		}
		defer cache.Close()
		for i, k := range keys {
			cache.Set(k, int64(i), 1)
		}
		cache.Wait()

		b.ReportAllocs()
		i := 0
		for n := 0; n < b.N; n++ {
			cache.Get(keys[i%benchKeySpace])
			i++
		}
	})
}

func BenchmarkComparison_Put(b *testing.B) {
	keys := benchKeys()

	b.Run("xwlru", func(b *testing.B) {
		cache, err := New[string, int64](Config{Capacity: benchKeySpace / 2})
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}

		b.ReportAllocs()
		i := 0
		for n := 0; n < b.N; n++ {
			_, _, _ = cache.Put(keys[i%benchKeySpace], int64(i))
			i++
		}
	})

	b.Run("hashicorp", func(b *testing.B) {
		cache, err := lru.New[string, int64](benchKeySpace / 2)
		if err != nil {
			b.Fatalf("lru.New failed: %v", err)
		}

		b.ReportAllocs()
		i := 0
		for n := 0; n < b.N; n++ {
			cache.Add(keys[i%benchKeySpace], int64(i))
			i++
		}
	})

	b.Run("ristretto", func(b *testing.B) {
		cache, err := ristretto.NewCache(&ristretto.Config[string, int64]{
			NumCounters: benchKeySpace * 10,
			MaxCost:     benchKeySpace / 2,
			BufferItems: 64,
		})
		if err != nil {
			b.Fatalf("ristretto.NewCache failed: %v", err)
		}
		defer cache.Close()

		b.ReportAllocs()
		i := 0
		for n := 0; n < b.N; n++ {
			cache.Set(keys[i%benchKeySpace], int64(i), 1)
			i++
		}
	})
}
