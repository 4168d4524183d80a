package xcacheconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTempConfig 写入临时配置文件并返回路径。
func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// =============================================================================
// New 测试
// =============================================================================

func TestNew_WhenYAMLFile_LoadsSettings(t *testing.T) {
	path := writeTempConfig(t, "cache.yaml", `cache:
  capacity: 1024
`)

	cfg, err := New(path)

	require.NoError(t, err)
	assert.Equal(t, int64(1024), cfg.Settings().Capacity)
	assert.Equal(t, FormatYAML, cfg.Format())
	assert.Equal(t, path, cfg.Path())
}

func TestNew_WhenJSONFile_LoadsSettings(t *testing.T) {
	path := writeTempConfig(t, "cache.json", `{"cache": {"capacity": 2048}}`)

	cfg, err := New(path)

	require.NoError(t, err)
	assert.Equal(t, int64(2048), cfg.Settings().Capacity)
	assert.Equal(t, FormatJSON, cfg.Format())
}

func TestNew_WhenYmlExtension_DetectsYAML(t *testing.T) {
	path := writeTempConfig(t, "cache.yml", `cache:
  capacity: 10
`)

	cfg, err := New(path)

	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format())
}

func TestNew_WhenEmptyPath_ReturnsError(t *testing.T) {
	_, err := New("")

	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestNew_WhenUnknownExtension_ReturnsError(t *testing.T) {
	path := writeTempConfig(t, "cache.toml", `capacity = 10`)

	_, err := New(path)

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNew_WhenFileMissing_ReturnsError(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorIs(t, err, ErrLoadFailed)
}

func TestNew_WhenMalformedYAML_ReturnsError(t *testing.T) {
	path := writeTempConfig(t, "cache.yaml", "cache: [unclosed")

	_, err := New(path)

	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestNew_WhenCapacityMissing_ReturnsInvalidSettings(t *testing.T) {
	path := writeTempConfig(t, "cache.yaml", `cache: {}`)

	_, err := New(path)

	assert.ErrorIs(t, err, ErrInvalidSettings)
}

func TestNew_WhenCapacityNonPositive_ReturnsInvalidSettings(t *testing.T) {
	for _, content := range []string{
		"cache:\n  capacity: 0\n",
		"cache:\n  capacity: -5\n",
	} {
		path := writeTempConfig(t, "cache.yaml", content)

		_, err := New(path)

		assert.ErrorIs(t, err, ErrInvalidSettings)
	}
}

// =============================================================================
// NewFromBytes 测试
// =============================================================================

func TestNewFromBytes_WhenValidYAML_LoadsSettings(t *testing.T) {
	cfg, err := NewFromBytes([]byte("cache:\n  capacity: 512\n"), FormatYAML)

	require.NoError(t, err)
	assert.Equal(t, int64(512), cfg.Settings().Capacity)
	assert.Empty(t, cfg.Path())
}

func TestNewFromBytes_WhenValidJSON_LoadsSettings(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`{"cache": {"capacity": 256}}`), FormatJSON)

	require.NoError(t, err)
	assert.Equal(t, int64(256), cfg.Settings().Capacity)
}

func TestNewFromBytes_WhenUnknownFormat_ReturnsError(t *testing.T) {
	_, err := NewFromBytes([]byte("capacity: 10"), Format("toml"))

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNewFromBytes_Reload_ReturnsError(t *testing.T) {
	cfg, err := NewFromBytes([]byte("cache:\n  capacity: 512\n"), FormatYAML)
	require.NoError(t, err)

	assert.ErrorIs(t, cfg.Reload(), ErrNotReloadable)
}

// =============================================================================
// Reload 测试
// =============================================================================

func TestConfig_Reload_PicksUpChanges(t *testing.T) {
	path := writeTempConfig(t, "cache.yaml", "cache:\n  capacity: 100\n")

	cfg, err := New(path)
	require.NoError(t, err)
	require.Equal(t, int64(100), cfg.Settings().Capacity)

	require.NoError(t, os.WriteFile(path, []byte("cache:\n  capacity: 200\n"), 0600))

	require.NoError(t, cfg.Reload())
	assert.Equal(t, int64(200), cfg.Settings().Capacity)
}

func TestConfig_Reload_WhenNewSettingsInvalid_KeepsOld(t *testing.T) {
	path := writeTempConfig(t, "cache.yaml", "cache:\n  capacity: 100\n")

	cfg, err := New(path)
	require.NoError(t, err)

	// 推送非法配置
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  capacity: 0\n"), 0600))

	err = cfg.Reload()
	assert.ErrorIs(t, err, ErrInvalidSettings)

	// 旧配置保留
	assert.Equal(t, int64(100), cfg.Settings().Capacity)
}

func TestConfig_Client_ExposesKoanf(t *testing.T) {
	cfg, err := NewFromBytes([]byte("cache:\n  capacity: 512\nextra:\n  region: cn-north\n"), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "cn-north", cfg.Client().String("extra.region"))
}
