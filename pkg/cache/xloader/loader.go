package xloader

import (
	"context"
	"time"

	"github.com/omeyang/cachekit/pkg/cache/xwlru"
)

// LoadFunc 定义从后端加载数据的函数类型。
// 返回值 (value, found, err) 三态区分：
//   - err != nil: 加载失败，错误原样透传给调用方，不写缓存
//   - found == false: 后端确认数据不存在（区别于失败），不写缓存
//   - found == true: 加载成功，结果写入缓存
type LoadFunc[V any] func(ctx context.Context) (V, bool, error)

// Loader 实现 Cache-Aside 模式的懒加载门面。
// 流程：缓存查询 → 未命中时回源 → 二次检查后写入缓存 → 返回数据。
//
// 设计决策: 不内置 singleflight。本包面向进程内缓存，回源通常是
// 内存计算或本地读取，并发重复加载的代价远低于引入去重带来的
// context 脱链和 goroutine 管理复杂度。需要防击穿的远端回源场景
// 应在 LoadFunc 内自行去重。
type Loader[K comparable, V any] struct {
	cache *xwlru.Cache[K, V]
	opts  *Options[K]
}

// New 创建 Loader 实例。
// cache 为 nil 时返回 ErrNilCache。
func New[K comparable, V any](cache *xwlru.Cache[K, V], opts ...Option[K]) (*Loader[K, V], error) {
	if cache == nil {
		return nil, ErrNilCache
	}

	options := defaultOptions[K]()
	for _, opt := range opts {
		if opt != nil {
			opt(options)
		}
	}

	return &Loader[K, V]{
		cache: cache,
		opts:  options,
	}, nil
}

// GetOrLoad 从缓存获取数据，未命中时调用 loadFn 回源。
//
// 返回值 (value, found, err)：
//   - 缓存命中: (缓存值, true, nil)，不调用 loadFn
//   - 回源成功: (加载值, true, nil)，结果写入缓存
//   - 后端无数据: (零值, false, nil)，不写缓存
//   - 回源失败: (零值, false, loadFn 的原始错误)，不写缓存
//
// 回源后通过 PutIfAbsent 写缓存：若期间已有其他调用写入同一 key，
// 保留已缓存的条目不覆盖，但本次加载结果仍原样返回给调用方。
//
// 写缓存是 best-effort：写入失败（如成本函数返回负值）记录日志并
// 触发 OnStoreError 钩子，但仍返回加载到的值，不影响业务。
func (l *Loader[K, V]) GetOrLoad(ctx context.Context, key K, loadFn LoadFunc[V]) (V, bool, error) {
	var zero V

	if loadFn == nil {
		return zero, false, ErrNilLoader
	}

	start := time.Now()

	// 1. 尝试从缓存获取
	if value, ok := l.cache.Get(key); ok {
		l.opts.Metrics.RecordLoad(ctx, loadResultHit, time.Since(start))
		return value, true, nil
	}

	// 2. 缓存未命中，回源加载
	value, found, err := loadFn(ctx)
	if err != nil {
		l.opts.Metrics.RecordLoad(ctx, loadResultError, time.Since(start))
		return zero, false, err
	}
	if !found {
		l.opts.Metrics.RecordLoad(ctx, loadResultNotFound, time.Since(start))
		return zero, false, nil
	}

	// 3. 通过 PutIfAbsent 写入缓存（best-effort，失败不影响业务返回）。
	// 加载期间若已有并发写入，保留缓存中的条目，本次加载结果照常返回。
	if _, _, putErr := l.cache.PutIfAbsent(key, value); putErr != nil {
		l.logWarn("xloader: cache store failed", "key", key, "error", putErr)
		l.onStoreError(ctx, key, putErr)
		l.opts.Metrics.RecordStoreError(ctx)
	}

	l.opts.Metrics.RecordLoad(ctx, loadResultLoaded, time.Since(start))
	return value, true, nil
}

// Invalidate 删除指定 key 的缓存条目，返回是否存在。
// 用于后端数据变更后主动失效。
func (l *Loader[K, V]) Invalidate(key K) bool {
	_, ok := l.cache.Remove(key)
	return ok
}

// InvalidateAll 清空全部缓存条目。
func (l *Loader[K, V]) InvalidateAll() {
	l.cache.Clear()
}

// Cache 返回底层缓存，供调用方直接读写或查询统计。
func (l *Loader[K, V]) Cache() *xwlru.Cache[K, V] {
	return l.cache
}

// logWarn 记录警告日志（如果配置了 Logger）。
func (l *Loader[K, V]) logWarn(msg string, args ...any) {
	if l.opts.Logger != nil {
		l.opts.Logger.Warn(msg, args...)
	}
}

// onStoreError 触发缓存写入失败回调（如果配置了）。
func (l *Loader[K, V]) onStoreError(ctx context.Context, key K, err error) {
	if l.opts.OnStoreError != nil {
		l.opts.OnStoreError(ctx, key, err)
	}
}
