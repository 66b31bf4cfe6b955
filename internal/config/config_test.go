package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lemnis.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
cycle_interval: 250ms
snapshot_every: 10
seed: 99
grpc_addr: "localhost:7777"
goal:
  innovation: 0.8
  stability: 0.1
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.CycleInterval)
	assert.Equal(t, 10, cfg.SnapshotEvery)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "localhost:7777", cfg.GRPCAddr)
	assert.Equal(t, 0.8, cfg.Goal.Innovation)
	// Unset fields keep defaults.
	assert.Equal(t, Default().JournalPath, cfg.JournalPath)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LEMNIS_GRPC_ADDR", "localhost:9999")
	t.Setenv("LEMNIS_SEED", "1234")
	t.Setenv("LEMNIS_CYCLE_INTERVAL", "2s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.GRPCAddr)
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 2*time.Second, cfg.CycleInterval)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cycle_interval: -5s\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("goal:\n  innovation: 3\n"), 0o644))
	_, err = Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestEngineConfigProjection(t *testing.T) {
	cfg := Default()
	cfg.Seed = 77
	cfg.CycleInterval = time.Second
	ec := cfg.EngineConfig()
	assert.Equal(t, int64(77), ec.Seed)
	assert.Equal(t, time.Second, ec.CycleInterval)
	assert.Equal(t, cfg.SnapshotEvery, ec.SnapshotEvery)
}

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lemnis.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []Config
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = Watch(ctx, path, zap.NewNop(), func(c Config) {
			mu.Lock()
			got = append(got, c)
			mu.Unlock()
		})
	}()

	// Give the watcher time to arm before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\n"), 0o644))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0 && got[len(got)-1].Seed == 5
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	<-done
}
