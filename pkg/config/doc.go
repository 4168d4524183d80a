// Package config 提供配置加载相关的子包。
//
// 子包列表：
//   - xcacheconf: 缓存参数的文件配置加载与热更新
//
// 设计原则：
//   - 校验前置，非法配置在加载时即报错
//   - 热更新失败时保留旧配置
package config
