package xloader

import (
	"context"
	"log/slog"
)

// StoreErrorHook 缓存写入失败回调钩子。
// 当回源成功但写入缓存失败时调用，用于监控告警或自定义处理。
// 注意：此钩子在请求路径上同步执行，应避免耗时操作。
type StoreErrorHook[K comparable] func(ctx context.Context, key K, err error)

// Options 定义 Loader 的配置选项。
type Options[K comparable] struct {
	// Logger 用于记录警告日志。
	// 默认使用 slog.Default()。
	Logger *slog.Logger

	// OnStoreError 缓存写入失败回调钩子。
	// 默认为 nil，仅记录日志。
	OnStoreError StoreErrorHook[K]

	// Metrics 指标收集器。
	// 默认为 nil，不收集指标。
	Metrics *Metrics
}

// Option 定义配置 Loader 的函数类型。
type Option[K comparable] func(*Options[K])

// defaultOptions 返回默认的 Loader 配置。
func defaultOptions[K comparable]() *Options[K] {
	return &Options[K]{
		Logger: slog.Default(),
	}
}

// WithLogger 设置自定义 Logger。
// 传入 nil 将禁用日志输出。
func WithLogger[K comparable](logger *slog.Logger) Option[K] {
	return func(o *Options[K]) {
		o.Logger = logger
	}
}

// WithOnStoreError 设置缓存写入失败回调钩子。
func WithOnStoreError[K comparable](hook StoreErrorHook[K]) Option[K] {
	return func(o *Options[K]) {
		o.OnStoreError = hook
	}
}

// WithMetrics 设置指标收集器。
// 传入 nil 等价于不收集指标。
func WithMetrics[K comparable](m *Metrics) Option[K] {
	return func(o *Options[K]) {
		o.Metrics = m
	}
}
