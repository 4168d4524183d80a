package xcacheconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	// FormatYAML YAML 格式（推荐用于 K8s ConfigMap）。
	FormatYAML Format = "yaml"

	// FormatJSON JSON 格式。
	FormatJSON Format = "json"
)

// koanf 配置键分隔符与结构体标签。
const (
	configDelim = "."
	configTag   = "koanf"
)

// Settings 定义缓存的可调参数。
// 对应配置文件中的 cache 段：
//
//	cache:
//	  capacity: 1048576
type Settings struct {
	// Capacity 缓存的总成本预算，必须大于 0。
	Capacity int64 `koanf:"capacity"`
}

// validate 校验参数合法性。
func (s Settings) validate() error {
	if s.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be greater than 0, got %d", ErrInvalidSettings, s.Capacity)
	}
	return nil
}

// settingsKey 是 Settings 在配置文件中的根路径。
const settingsKey = "cache"

// Config 持有从文件或字节数据加载的缓存配置。
// Settings() 返回的快照与 Reload() 并发安全。
type Config struct {
	k        *koanf.Koanf
	path     string
	format   Format
	isBytes  bool
	mu       sync.RWMutex
	settings Settings
}

// New 从文件路径创建配置实例。
// 根据文件扩展名自动检测格式（.yaml/.yml 或 .json）。
func New(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	c := &Config{
		path:   path,
		format: format,
	}
	if err := c.load(data); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromBytes 从字节数据创建配置实例。
// 需要显式指定格式，适用于 K8s ConfigMap 等场景。
// 从字节数据创建的 Config 不支持 Reload 和 Watch。
func NewFromBytes(data []byte, format Format) (*Config, error) {
	if !isValidFormat(format) {
		return nil, ErrUnsupportedFormat
	}

	c := &Config{
		format:  format,
		isBytes: true,
	}
	if err := c.load(data); err != nil {
		return nil, err
	}
	return c, nil
}

// Settings 返回当前配置快照。
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings
}

// Client 返回底层的 koanf 实例，用于读取 cache 段之外的自定义配置。
func (c *Config) Client() *koanf.Koanf {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.k
}

// Reload 重新加载配置文件。
// 此方法是并发安全的。新配置校验失败时保留旧配置并返回错误。
// 仅对从文件创建的 Config 有效。
func (c *Config) Reload() error {
	if c.isBytes {
		return ErrNotReloadable
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return c.load(data)
}

// Path 返回配置文件路径。
// 从字节数据创建的 Config 返回空字符串。
func (c *Config) Path() string {
	return c.path
}

// Format 返回配置格式。
func (c *Config) Format() Format {
	return c.format
}

// load 解析并校验配置数据，校验通过后原子替换内部状态。
func (c *Config) load(data []byte) error {
	k := koanf.New(configDelim)

	var parser koanf.Parser
	switch c.format {
	case FormatYAML:
		parser = yaml.Parser()
	case FormatJSON:
		parser = json.Parser()
	default:
		return ErrUnsupportedFormat
	}

	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	var settings Settings
	if err := k.UnmarshalWithConf(settingsKey, &settings, koanf.UnmarshalConf{
		Tag: configTag,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrParseFailed, err)
	}

	if err := settings.validate(); err != nil {
		return err
	}

	c.mu.Lock()
	c.k = k
	c.settings = settings
	c.mu.Unlock()

	return nil
}

// detectFormat 根据文件扩展名检测配置格式。
func detectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %s", ErrUnsupportedFormat, ext)
	}
}

// isValidFormat 检查格式是否有效。
func isValidFormat(format Format) bool {
	switch format {
	case FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}
