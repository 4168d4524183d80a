package xwlru

// EvictReason 表示条目被移除并触发回调的原因。
type EvictReason uint8

const (
	// EvictReasonCapacity 表示总成本超出预算触发的 LRU 淘汰（由 Put 引起）。
	EvictReasonCapacity EvictReason = iota

	// EvictReasonReplace 表示 Put 覆盖同 key 时旧值被替换。
	EvictReasonReplace

	// EvictReasonClear 表示 Clear 全量清空。
	EvictReasonClear

	// EvictReasonResize 表示 Resize 缩容触发的淘汰。
	EvictReasonResize
)

// String 返回原因的可读名称，便于日志输出。
func (r EvictReason) String() string {
	switch r {
	case EvictReasonCapacity:
		return "capacity"
	case EvictReasonReplace:
		return "replace"
	case EvictReasonClear:
		return "clear"
	case EvictReasonResize:
		return "resize"
	default:
		return "unknown"
	}
}

// ByPut 报告本次移除是否由一次 Put 调用直接触发（容量淘汰或同 key 覆盖）。
func (r EvictReason) ByPut() bool {
	return r == EvictReasonCapacity || r == EvictReasonReplace
}

// Eviction 描述一次触发回调的条目移除事件。
type Eviction[K comparable, V any] struct {
	// Key 被移除条目的键。
	Key K

	// Value 被移除的旧值。
	Value V

	// Cost 被移除条目的成本。
	Cost int64

	// Reason 移除原因。
	Reason EvictReason

	// NewValue 覆盖后的新值，仅 Reason == EvictReasonReplace 时有效。
	NewValue V

	// HasNewValue 标记 NewValue 是否有效。
	HasNewValue bool
}

// EvictCallback 定义条目移除回调函数类型。
// 回调在缓存锁内同步执行，约束见 [WithOnEvicted]。
type EvictCallback[K comparable, V any] func(ev Eviction[K, V])
