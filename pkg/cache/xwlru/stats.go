package xwlru

// statCounters 内部累计计数器，由 Cache.mu 保护。
type statCounters struct {
	hits        uint64
	misses      uint64
	keysAdded   uint64
	keysEvicted uint64
	costAdded   uint64
	costEvicted uint64
}

// Stats 定义缓存的统计信息快照。
//
// 口径说明：
//   - Hits/Misses 仅统计 Get；Peek 和 Contains 不影响统计
//   - KeysAdded 统计新增条目，不含同 key 覆盖
//   - KeysEvicted/CostEvicted 统计容量淘汰、Resize 缩容和 Clear；
//     显式 Remove 与同 key 覆盖不计入
//   - CostAdded 统计所有写入（含覆盖）的累计成本
type Stats struct {
	// Hits 缓存命中次数。
	Hits uint64

	// Misses 缓存未命中次数。
	Misses uint64

	// HitRatio 缓存命中率 (0.0 - 1.0)。
	HitRatio float64

	// KeysAdded 已新增的条目数量。
	KeysAdded uint64

	// KeysEvicted 已淘汰的条目数量。
	KeysEvicted uint64

	// CostAdded 已写入的累计成本。
	CostAdded uint64

	// CostEvicted 已淘汰的累计成本。
	CostEvicted uint64
}

// Stats 返回统计信息的瞬时快照。
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Stats{
		Hits:        c.stats.hits,
		Misses:      c.stats.misses,
		KeysAdded:   c.stats.keysAdded,
		KeysEvicted: c.stats.keysEvicted,
		CostAdded:   c.stats.costAdded,
		CostEvicted: c.stats.costEvicted,
	}
	if total := s.Hits + s.Misses; total > 0 {
		s.HitRatio = float64(s.Hits) / float64(total)
	}
	return s
}
