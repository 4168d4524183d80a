// Package xcacheconf 提供缓存参数的文件配置加载与热更新。
//
// # 核心特性
//
//   - 支持 YAML 和 JSON 格式，按扩展名自动检测
//   - NewFromBytes 支持 K8s ConfigMap 等字节数据场景
//   - 配置校验前置：非法配置（capacity <= 0）在加载时即报错
//   - Watch 监视文件变更，自动重载并回调新参数
//
// # 设计决策
//
// Reload 校验失败时保留旧配置，缓存继续以旧预算运行，避免一次
// 错误的配置推送把预算打到非法值。回调拿到的 err 非 nil 时
// settings 为旧值，调用方据此决定是否告警。
//
// # 典型用法
//
// 加载配置并在文件变更时调整缓存预算：
//
//	cfg, _ := xcacheconf.New("/etc/app/cache.yaml")
//	cache, _ := xwlru.New[string, []byte](xwlru.Config{Capacity: cfg.Settings().Capacity})
//
//	w, _ := xcacheconf.Watch(cfg, func(s xcacheconf.Settings, err error) {
//	    if err == nil {
//	        _ = cache.Resize(s.Capacity)
//	    }
//	})
//	w.StartAsync()
//	defer w.Stop()
package xcacheconf
