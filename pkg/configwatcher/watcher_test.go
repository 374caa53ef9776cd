package configwatcher

import (
	"eduflow_backend/internal/config"
	"eduflow_backend/pkg/logger"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, port string) {
	t.Helper()
	content := []byte(
		"server:\n  port: \"" + port + "\"\n  mode: test\n" +
			"jwt:\n  secret: watcher-test-secret\n  expire_hours: 1\n")
	require.NoError(t, os.WriteFile(path, content, 0644))
}

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	writeConfig(t, path, "8080")

	logger.InitLogger(&config.Config{})

	reloaded := make(chan interface{}, 1)
	go WatchConfig(path, nil, func(cfg interface{}) {
		select {
		case reloaded <- cfg:
		default:
		}
	})

	// give the watcher a moment to register before writing
	time.Sleep(200 * time.Millisecond)
	writeConfig(t, path, "9090")

	select {
	case raw := <-reloaded:
		cfg, ok := raw.(*config.Config)
		require.True(t, ok, "reloader received %T", raw)
		assert.Equal(t, "9090", cfg.Server.Port)
	case <-time.After(5 * time.Second):
		t.Fatal("config was written but the reloader never fired")
	}
}
