package app

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/haierkeys/note-crud-service/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, realpath, err := LoadConfig(writeConfig(t, "server:\n  run-mode: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, realpath, cfg.File)

	assert.Equal(t, "debug", cfg.Server.RunMode)
	assert.Equal(t, ":3000", cfg.Server.HttpPort)
	assert.Equal(t, store.DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Store.URI)
	assert.Equal(t, "tutor", cfg.Store.Database)
	assert.Equal(t, "notes", cfg.Store.Collection)
	assert.Equal(t, "X-Trace-ID", cfg.Tracer.Header)
	assert.Zero(t, cfg.GetContextTimeout())
	assert.Equal(t, 30*time.Second, cfg.GetStoreProbeInterval())

	sc := cfg.GetStoreConfig()
	assert.Equal(t, 10*time.Second, sc.ConnectTimeout)
	assert.Equal(t, "debug", sc.RunMode)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv(EnvStoreURI, "mongodb://db.internal:27017")
	t.Setenv(EnvHttpPort, ":8080")

	cfg, _, err := LoadConfig(writeConfig(t, "store:\n  uri: mongodb://other:27017\n"))
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.Store.URI)
	assert.Equal(t, ":8080", cfg.Server.HttpPort)
}

func TestLoadConfigEnvBarePort(t *testing.T) {
	t.Setenv(EnvHttpPort, "38123")

	cfg, _, err := LoadConfig(writeConfig(t, "server:\n  run-mode: release\n"))
	require.NoError(t, err)
	assert.Equal(t, ":38123", cfg.Server.HttpPort)

	// 必须是可监听的地址
	ln, err := net.Listen("tcp", cfg.Server.HttpPort)
	require.NoError(t, err)
	_ = ln.Close()
}

func TestNormalizeAddr(t *testing.T) {
	assert.Equal(t, ":3000", NormalizeAddr("3000"))
	assert.Equal(t, ":3000", NormalizeAddr(" 3000 "))
	assert.Equal(t, ":8080", NormalizeAddr(":8080"))
	assert.Equal(t, "127.0.0.1:8080", NormalizeAddr("127.0.0.1:8080"))
}

func TestLoadConfigInvalid(t *testing.T) {
	_, _, err := LoadConfig(writeConfig(t, "store:\n  driver: redis\n"))
	assert.ErrorContains(t, err, "unknown store driver")

	_, _, err = LoadConfig(writeConfig(t, "store:\n  connect-timeout: soon\n"))
	assert.Error(t, err)

	_, _, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config file failed")
}

func TestConfigSave(t *testing.T) {
	p := writeConfig(t, "app:\n  lang: zh-cn\n")
	cfg, _, err := LoadConfig(p)
	require.NoError(t, err)

	cfg.Store.Collection = "archive"
	require.NoError(t, cfg.Save())

	again, _, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "archive", again.Store.Collection)
	assert.Equal(t, "zh-cn", again.App.Lang)
}
