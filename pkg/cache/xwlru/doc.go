// Package xwlru 提供成本加权的分段 LRU 缓存实现。
//
// 与按条目数限容的 LRU 不同，xwlru 以累计成本（cost）计量容量：
// 每个条目的成本由可插拔的成本函数计算（如图像字节数、解码开销），
// 总成本超出预算时同步淘汰条目。
//
// # 核心特性
//
//   - 泛型支持：任意 comparable 键类型和任意值类型
//   - 成本限容：容量以 cost 单位计量，成本函数可按 (key, value) 自定义
//   - 分段淘汰：新条目进入试用段，被再次访问（Get 命中、同 key 覆盖、
//     PutIfAbsent 命中）后晋升到保护段；淘汰先清试用段最旧的条目，
//     命中过的条目不会被其后写入的一次性条目挤出缓存
//   - 同步淘汰：Put 返回前总成本必然回到预算内（单条超额条目除外，见下）
//   - 淘汰回调：携带移除原因（容量淘汰/覆盖/清空/缩容）和被移除的值
//   - 并发安全：单把互斥锁保护全部操作，临界区内无 I/O
//
// # 设计决策
//
// 实现为哈希表 + 两条双向链表（container/list），Get/Put/淘汰均摊 O(1)。
// 成本采用增量核算（运行总量），不做全量扫描。
//
// 淘汰顺序采用两段模型而非单链全局 LRU：单链模型下一次 Get 的保护
// 作用会被任意后续写入冲掉，顺序扫描式的批量写入可以把刚刚命中过的
// 热条目全部挤出缓存。两段模型让命中过的条目优先于从未复用的新条目
// 存活，扫描抗性更好，淘汰顺序依然完全确定。
//
// 未采用 hashicorp/golang-lru（仅支持条目数限容）和 dgraph-io/ristretto
// （成本限容但采用采样准入和异步写入，淘汰顺序不确定、写入不保证
// 立即可见），两者的语义均不满足确定性淘汰顺序的要求。基准测试中
// 保留了与两者的对比。
//
// 使用单把互斥锁而非分片：确定性淘汰顺序要求全局唯一的条目排序，
// 分片会破坏跨分片的淘汰顺序。临界区短且无 I/O，锁竞争对绝大多数场景足够。
//
// # 已知限制
//
//   - 零成本条目合法且不触发淘汰，条目数不设上限——
//     病态的成本函数可使缓存持有任意多的零成本条目（按条目数限容是非目标）
//   - 单个条目成本超过预算时允许写入，但下一次写入触发淘汰时最先出局，
//     实际上不可再次命中
//   - 保护段不设容量上限：极端访问模式下（所有条目都被访问过）
//     分段淘汰退化为按访问时间排序的全局 LRU
//   - 无 TTL 过期：条目只因容量、覆盖、显式删除或清空离开缓存
//   - 淘汰回调在锁内执行，严禁在回调中调用 Cache 自身方法（会死锁）
//
// # 注意事项
//
//   - 成本函数必须是纯函数且返回非负值，返回负值时 Put 失败（ErrNegativeCost）
//     且状态不变
//   - 显式 Remove 不触发淘汰回调，Clear 会为每个条目触发
//   - Cache 无内部 goroutine，无需 Close；释放全部条目用 Clear
package xwlru
