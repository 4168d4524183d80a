package xwlru

import "errors"

var (
	// ErrInvalidCapacity 表示成本预算配置无效。
	ErrInvalidCapacity = errors.New("xwlru: capacity must be greater than 0")

	// ErrNegativeCost 表示成本函数返回了负值。
	// 这是调用方的契约违规：成本函数必须对任意 (key, value) 返回非负值。
	// 返回此错误时缓存状态保持不变。
	ErrNegativeCost = errors.New("xwlru: cost function returned a negative value")
)
