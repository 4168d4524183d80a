package xcacheconf

import "errors"

// 配置加载和解析相关错误。
var (
	// ErrEmptyPath 表示配置文件路径为空。
	ErrEmptyPath = errors.New("xcacheconf: empty config path")

	// ErrUnsupportedFormat 表示不支持的配置格式。
	ErrUnsupportedFormat = errors.New("xcacheconf: unsupported config format")

	// ErrLoadFailed 表示配置加载失败。
	ErrLoadFailed = errors.New("xcacheconf: failed to load config")

	// ErrParseFailed 表示配置解析失败。
	ErrParseFailed = errors.New("xcacheconf: failed to parse config")

	// ErrInvalidSettings 表示配置值非法。
	ErrInvalidSettings = errors.New("xcacheconf: invalid settings")

	// ErrNotReloadable 表示从字节数据创建的配置不支持重载和监视。
	ErrNotReloadable = errors.New("xcacheconf: config created from bytes cannot be reloaded")

	// ErrNilConfig 表示传入的配置实例为 nil。
	ErrNilConfig = errors.New("xcacheconf: nil config")
)
