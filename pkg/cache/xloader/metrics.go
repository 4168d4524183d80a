package xloader

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// 设计决策: 指标前缀使用 "xloader.*"，与 OTel Meter scope name 保持一致
// （Meter("xloader")），各包自治命名。如需统一命名空间，应在采集端处理。
const (
	// metricNameLoadTotal 加载次数计数器
	metricNameLoadTotal = "xloader.load.total"
	// metricNameLoadDuration 加载耗时直方图
	metricNameLoadDuration = "xloader.load.duration"
	// metricNameStoreErrorTotal 缓存写入失败次数计数器
	metricNameStoreErrorTotal = "xloader.store_error.total"
)

// instrumentationVersion 仪表化版本号
const instrumentationVersion = "1.0.0"

// attrResult 加载结果标签
const attrResult = "result"

// 加载结果取值
const (
	// loadResultHit 缓存命中
	loadResultHit = "hit"
	// loadResultLoaded 回源成功
	loadResultLoaded = "loaded"
	// loadResultNotFound 后端确认数据不存在
	loadResultNotFound = "not_found"
	// loadResultError 回源失败
	loadResultError = "error"
)

// durationBuckets 耗时直方图的桶边界
var durationBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0}

// Metrics 加载器指标收集器。
// 提供 Counter 和 Histogram 类型的指标收集。
type Metrics struct {
	meter           metric.Meter
	loadTotal       metric.Int64Counter
	loadDuration    metric.Float64Histogram
	storeErrorTotal metric.Int64Counter
}

// NewMetrics 创建指标收集器。
// 如果 meterProvider 为 nil，返回 nil（不收集指标）。
func NewMetrics(meterProvider metric.MeterProvider) (*Metrics, error) {
	if meterProvider == nil {
		return nil, nil
	}

	m := &Metrics{}
	m.meter = meterProvider.Meter("xloader",
		metric.WithInstrumentationVersion(instrumentationVersion),
	)

	var err error
	if m.loadTotal, err = m.meter.Int64Counter(metricNameLoadTotal,
		metric.WithDescription("懒加载请求次数"), metric.WithUnit("{load}")); err != nil {
		return nil, err
	}
	if m.loadDuration, err = m.meter.Float64Histogram(metricNameLoadDuration,
		metric.WithDescription("懒加载请求耗时"), metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...)); err != nil {
		return nil, err
	}
	if m.storeErrorTotal, err = m.meter.Int64Counter(metricNameStoreErrorTotal,
		metric.WithDescription("缓存写入失败次数"), metric.WithUnit("{error}")); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordLoad 记录一次加载请求。
// result 取值：hit / loaded / not_found / error。
func (m *Metrics) RecordLoad(ctx context.Context, result string, duration time.Duration) {
	if m == nil {
		return
	}

	// 使用 context.WithoutCancel 确保即使 ctx 被取消，指标仍能记录
	metricsCtx := context.WithoutCancel(ctx)

	attrs := metric.WithAttributes(attribute.String(attrResult, result))
	m.loadTotal.Add(metricsCtx, 1, attrs)
	m.loadDuration.Record(metricsCtx, duration.Seconds(), attrs)
}

// RecordStoreError 记录一次缓存写入失败。
func (m *Metrics) RecordStoreError(ctx context.Context) {
	if m == nil {
		return
	}

	m.storeErrorTotal.Add(context.WithoutCancel(ctx), 1)
}
