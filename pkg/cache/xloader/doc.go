// Package xloader 提供基于 xwlru 的懒加载门面（Cache-Aside 模式）。
//
// # 核心特性
//
//   - GetOrLoad：缓存命中直接返回，未命中时回源加载并写入缓存
//   - 三态回源语义：成功 / 数据不存在 / 加载失败，互不混淆
//   - 写缓存 best-effort：写入失败不影响业务返回
//   - 可选 OTel 指标（命中率、回源耗时、写入失败次数）
//
// # 设计决策
//
// 回源与写缓存之间不持有缓存锁，靠 PutIfAbsent 保证缓存条目由
// 先写入者胜出、不被后来的加载结果覆盖；每次调用返回的始终是
// 自己加载到的值。并发未命中时 loadFn 可能被多次调用。
// 本包不内置 singleflight：
// 进程内缓存的回源通常是内存计算，重复加载的代价低于去重机制的
// 复杂度；远端回源需要防击穿时应在 LoadFunc 内自行去重。
//
// # 已知限制
//
//   - 数据不存在（found == false）的结果不会被缓存，后端持续
//     无数据时每次调用都会回源。需要负缓存的场景应在 LoadFunc
//     内包装哨兵值。
//   - 加载失败不会被缓存，也没有退避机制，错误风暴由调用方控制。
//
// # 注意事项
//
// OnStoreError 钩子在请求路径上同步执行，应避免耗时操作。
package xloader
