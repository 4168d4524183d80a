package xwlru

import (
	"container/list"
	"fmt"
	"sync"
)

// CostFunc 计算条目的成本（权重）。
// 必须是纯函数：对相同的 (key, value) 返回确定的非负值，不得有副作用。
// 返回负值视为契约违规，Put 会失败并返回 [ErrNegativeCost]，缓存状态不变。
type CostFunc[K comparable, V any] func(key K, value V) int64

// Config 定义缓存配置。
type Config struct {
	// Capacity 缓存的成本预算（cost 单位，非条目数）。
	// 必须大于 0。
	Capacity int64
}

// Option 定义缓存可选配置函数类型。
type Option[K comparable, V any] func(*options[K, V])

// options 内部可选配置。
type options[K comparable, V any] struct {
	costOf    CostFunc[K, V]
	onEvicted EvictCallback[K, V]
}

// WithCostFunc 设置成本函数。
// 未设置时每个条目成本固定为 1，此时 Capacity 退化为条目数上限。
func WithCostFunc[K comparable, V any](fn CostFunc[K, V]) Option[K, V] {
	return func(o *options[K, V]) {
		o.costOf = fn
	}
}

// WithOnEvicted 设置条目被移除时的回调函数。
//
// 设计决策: 回调在缓存的互斥锁内同步执行（Put 触发淘汰、覆盖旧值、
// Clear、Resize 缩容均会调用）。调用方必须遵守以下约束：
//   - 严禁在回调中调用 Cache 自身的任何方法（Get/Put/Remove 等），否则会死锁
//   - 应避免耗时操作（如 I/O），以免阻塞其他并发操作
//   - 如需执行复杂逻辑，应将事件发送到外部 channel 异步处理
//
// 显式 Remove 不触发回调：回调的典型用途是释放条目关联的外部资源，
// 主动删除的调用方通常已自行承担该责任。
func WithOnEvicted[K comparable, V any](fn EvictCallback[K, V]) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvicted = fn
	}
}

// entry 是双向链表节点存储的对象。
// 节点中保留 key，淘汰队尾节点时才能从字典中删除对应映射。
type entry[K comparable, V any] struct {
	key       K
	value     V
	cost      int64
	protected bool // true 表示条目位于保护段
}

// Cache 是成本加权的分段 LRU 缓存。
// 容量以累计 cost 计量而非条目数，超出预算时同步淘汰条目。
//
// 条目分两段管理：新写入的条目进入试用段，被再次访问（Get 命中、
// 同 key 覆盖、PutIfAbsent 命中）后晋升到保护段。淘汰优先从试用段
// 最旧的条目开始，试用段耗尽后才淘汰保护段最旧的条目。访问过的
// 条目因此不会被其后写入的一次性条目挤出缓存。
//
// 必须通过 [New] 创建，零值不可用（方法调用会 panic）。
// 所有方法都是并发安全的。
//
// Cache 没有内部 goroutine，无需 Close；释放全部条目可调用 Clear，
// 或直接丢弃引用交给 GC。
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	capacity  int64
	used      int64
	probation *list.List // 试用段：写入后未被再次访问的条目，链头为最新
	protected *list.List // 保护段：被再次访问过的条目，链头为最近访问
	items     map[K]*list.Element
	costOf    CostFunc[K, V]
	onEvicted EvictCallback[K, V]
	stats     statCounters
}

// New 创建新的成本加权分段 LRU 缓存。
// 如果 cfg.Capacity <= 0，返回 ErrInvalidCapacity。
func New[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Cache[K, V], error) {
	if cfg.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	o := &options[K, V]{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.costOf == nil {
		o.costOf = func(K, V) int64 { return 1 }
	}

	return &Cache[K, V]{
		capacity:  cfg.Capacity,
		probation: list.New(),
		protected: list.New(),
		items:     make(map[K]*list.Element),
		costOf:    o.costOf,
		onEvicted: o.onEvicted,
	}, nil
}

// Get 获取缓存值并将条目晋升到保护段（已在保护段的移到段首）。
// 键不存在时返回零值和 false，无任何副作用。
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.stats.misses++
		return value, false
	}
	elem = c.touchLocked(elem)
	c.stats.hits++
	return elem.Value.(*entry[K, V]).value, true
}

// Peek 获取缓存值但不晋升条目，也不计入命中统计。
// 适用于检查缓存状态而不影响淘汰策略的场景。
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return value, false
	}
	return elem.Value.(*entry[K, V]).value, true
}

// Contains 检查键是否存在（不晋升条目，不计入命中统计）。
func (c *Cache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.items[key]
	return ok
}

// Put 插入或覆盖条目，返回该 key 之前关联的值（如有）。
//
// 新 key 进入试用段；覆盖已有 key 视为一次访问，条目晋升到保护段。
//
// 成本核算：写入前通过成本函数计算条目 cost；覆盖已有 key 时总成本
// 按增量调整，不会重复计数。写入后若总成本超出 Capacity，同步淘汰
// 条目（不含本次写入的条目）直到恢复预算：先淘汰试用段最旧的，
// 试用段耗尽后淘汰保护段最旧的，每个被淘汰的条目触发一次淘汰回调。
//
// 单个条目 cost 超过 Capacity 时允许写入，但它会在下一次写入触发的
// 淘汰循环中最先出局，实际上不可再次命中。
//
// 成本函数返回负值时返回 [ErrNegativeCost]，缓存状态保持不变。
func (c *Cache[K, V]) Put(key K, value V) (prev V, replaced bool, err error) {
	cost := c.costOf(key, value)
	if cost < 0 {
		return prev, false, fmt.Errorf("%w: got %d", ErrNegativeCost, cost)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, replaced = c.putLocked(key, value, cost)
	return prev, replaced, nil
}

// PutIfAbsent 仅在键不存在时插入条目。
// 键已存在时返回现有值和 false（视为一次访问，现有条目晋升到保护段），
// 不做任何写入；键不存在时等同于 Put，返回零值和 true。
//
// 设计决策: 查询与写入在同一临界区内完成，供 xloader 实现
// "仅在仍缺失时写入" 语义，避免检查与写入之间的竞态窗口。
func (c *Cache[K, V]) PutIfAbsent(key K, value V) (existing V, inserted bool, err error) {
	cost := c.costOf(key, value)
	if cost < 0 {
		return existing, false, fmt.Errorf("%w: got %d", ErrNegativeCost, cost)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem = c.touchLocked(elem)
		return elem.Value.(*entry[K, V]).value, false, nil
	}

	c.putLocked(key, value, cost)
	return existing, true, nil
}

// touchLocked 将条目标记为再次访问：试用段条目迁移到保护段段首，
// 保护段条目移到段首。返回迁移后的链表节点。调用方必须持有 c.mu。
func (c *Cache[K, V]) touchLocked(elem *list.Element) *list.Element {
	ent := elem.Value.(*entry[K, V])
	if ent.protected {
		c.protected.MoveToFront(elem)
		return elem
	}

	c.probation.Remove(elem)
	ent.protected = true
	elem = c.protected.PushFront(ent)
	c.items[ent.key] = elem
	return elem
}

// putLocked 执行写入和淘汰，返回被覆盖的旧值（如有）。调用方必须持有 c.mu。
func (c *Cache[K, V]) putLocked(key K, value V, cost int64) (prev V, replaced bool) {
	var fresh *list.Element

	if elem, ok := c.items[key]; ok {
		ent := elem.Value.(*entry[K, V])
		old := ent.value
		oldCost := ent.cost
		c.used += cost - oldCost
		ent.value = value
		ent.cost = cost
		fresh = c.touchLocked(elem)
		c.stats.costAdded += uint64(cost)

		if c.onEvicted != nil {
			c.onEvicted(Eviction[K, V]{
				Key:         key,
				Value:       old,
				Cost:        oldCost,
				Reason:      EvictReasonReplace,
				NewValue:    value,
				HasNewValue: true,
			})
		}
		prev, replaced = old, true
	} else {
		fresh = c.probation.PushFront(&entry[K, V]{key: key, value: value, cost: cost})
		c.items[key] = fresh
		c.used += cost
		c.stats.keysAdded++
		c.stats.costAdded += uint64(cost)
	}

	c.trimLocked(EvictReasonCapacity, fresh)
	return prev, replaced
}

// trimLocked 淘汰条目直到总成本回到预算内，调用方必须持有 c.mu。
// exempt 为本次写入的条目（可为 nil），即使自身超出预算也不被淘汰；
// 缓存始终至少保留一个条目。
func (c *Cache[K, V]) trimLocked(reason EvictReason, exempt *list.Element) {
	for c.used > c.capacity && c.lenLocked() > 1 {
		victim := c.victimLocked(exempt)
		if victim == nil {
			return
		}
		c.evictLocked(victim, reason)
	}
}

// victimLocked 选出下一个淘汰候选：试用段最旧的条目优先，试用段
// 耗尽后取保护段最旧的条目；跳过 exempt。调用方必须持有 c.mu。
func (c *Cache[K, V]) victimLocked(exempt *list.Element) *list.Element {
	for elem := c.probation.Back(); elem != nil; elem = elem.Prev() {
		if elem != exempt {
			return elem
		}
	}
	for elem := c.protected.Back(); elem != nil; elem = elem.Prev() {
		if elem != exempt {
			return elem
		}
	}
	return nil
}

// evictLocked 淘汰指定条目并触发回调，调用方必须持有 c.mu。
func (c *Cache[K, V]) evictLocked(elem *list.Element, reason EvictReason) {
	ent := elem.Value.(*entry[K, V])
	delete(c.items, ent.key)
	c.segmentOf(ent).Remove(elem)
	c.used -= ent.cost
	c.stats.keysEvicted++
	c.stats.costEvicted += uint64(ent.cost)

	if c.onEvicted != nil {
		c.onEvicted(Eviction[K, V]{
			Key:    ent.key,
			Value:  ent.value,
			Cost:   ent.cost,
			Reason: reason,
		})
	}
}

// segmentOf 返回条目所在的链表。
func (c *Cache[K, V]) segmentOf(ent *entry[K, V]) *list.List {
	if ent.protected {
		return c.protected
	}
	return c.probation
}

// lenLocked 返回当前条目总数，调用方必须持有 c.mu。
func (c *Cache[K, V]) lenLocked() int {
	return c.probation.Len() + c.protected.Len()
}

// Remove 删除指定键并返回其值（如有）。
// 不触发淘汰回调：主动删除的调用方已拥有该值的处置权。
func (c *Cache[K, V]) Remove(key K) (value V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return value, false
	}
	ent := elem.Value.(*entry[K, V])
	delete(c.items, key)
	c.segmentOf(ent).Remove(elem)
	c.used -= ent.cost
	return ent.value, true
}

// Clear 移除所有条目，按淘汰顺序（先试用段从旧到新，再保护段从旧到新）
// 为每个条目触发淘汰回调。
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, seg := range []*list.List{c.probation, c.protected} {
		for elem := seg.Back(); elem != nil; elem = elem.Prev() {
			ent := elem.Value.(*entry[K, V])
			c.stats.keysEvicted++
			c.stats.costEvicted += uint64(ent.cost)
			if c.onEvicted != nil {
				c.onEvicted(Eviction[K, V]{
					Key:    ent.key,
					Value:  ent.value,
					Cost:   ent.cost,
					Reason: EvictReasonClear,
				})
			}
		}
	}

	clear(c.items)
	c.probation.Init()
	c.protected.Init()
	c.used = 0
}

// Resize 调整成本预算。缩容时同步淘汰条目直到满足新预算
// （每个触发一次淘汰回调），扩容立即生效。
// capacity <= 0 时返回 ErrInvalidCapacity，预算保持不变。
func (c *Cache[K, V]) Resize(capacity int64) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.capacity = capacity
	c.trimLocked(EvictReasonResize, nil)
	return nil
}

// Len 返回当前缓存条目数。
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lenLocked()
}

// Cost 返回当前所有条目的累计成本。
func (c *Cache[K, V]) Cost() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}

// Capacity 返回当前成本预算。
func (c *Cache[K, V]) Capacity() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacity
}

// Keys 返回所有键的切片，按预期淘汰顺序排列：先试用段从旧到新，
// 再保护段从最久访问到最近访问。首个元素是下一个淘汰候选。
// 返回值是快照，复杂度 O(n)。
func (c *Cache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.lenLocked())
	for _, seg := range []*list.List{c.probation, c.protected} {
		for elem := seg.Back(); elem != nil; elem = elem.Prev() {
			keys = append(keys, elem.Value.(*entry[K, V]).key)
		}
	}
	return keys
}
