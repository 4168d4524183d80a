// Package cache 提供进程内缓存相关的子包。
//
// 子包列表：
//   - xwlru: 按成本限额的分段 LRU 缓存
//   - xloader: 基于 xwlru 的懒加载门面（Cache-Aside 模式）
//
// 设计原则：
//   - 成本预算而非条目数限额，成本函数由调用方定义
//   - 确定性的分段 LRU 淘汰顺序，命中过的条目优先存活
//   - 可观测性可选接入（统计快照、OTel 指标）
package cache
