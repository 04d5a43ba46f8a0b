package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyUsesDefaults(t *testing.T) {
	for _, in := range []string{"", "   \n", "# only a comment\n"} {
		cfg, err := Parse([]byte(in))
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, Default(), cfg)
	}
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse([]byte(`
log_level: debug
log_file: /tmp/scribe.log
id_strategy: timestamp
event_buffer: 8
editor:
  content_height: 10
theme:
  accent: "#00FF00"
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/scribe.log", cfg.LogFile)
	assert.Equal(t, "timestamp", cfg.IDStrategy)
	assert.Equal(t, 8, cfg.EventBuffer)
	assert.Equal(t, 10, cfg.Editor.ContentHeight)
	assert.Equal(t, 60, cfg.Editor.Width, "unset nested fields keep defaults")
	assert.Equal(t, "#00FF00", cfg.Theme.Accent)
	assert.Equal(t, "#FF3B30", cfg.Theme.Danger)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown key", "colour: red\n"},
		{"bad level", "log_level: loud\n"},
		{"bad strategy", "id_strategy: random\n"},
		{"negative buffer", "event_buffer: -1\n"},
		{"narrow editor", "editor:\n  width: 5\n"},
		{"flat editor", "editor:\n  content_height: 0\n"},
		{"not yaml", "log_level: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	want := Default()
	want.LogLevel = "debug"

	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestWatch_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 16)
	require.NoError(t, Watch(ctx, path, func(cfg Config) { changes <- cfg }, nil))

	// Give the watcher goroutine a moment to start.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0644))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.LogLevel == "debug" {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 16)
	require.NoError(t, Watch(ctx, path, func(cfg Config) { changes <- cfg }, nil))

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))

	select {
	case cfg := <-changes:
		t.Fatalf("unexpected reload: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_ReportsInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scribe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := make(chan error, 16)
	require.NoError(t, Watch(ctx, path, func(Config) {}, func(err error) { errs <- err }))

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0644))

	select {
	case err := <-errs:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload error")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "scribe.yaml"), func(Config) {}, nil)
	assert.Error(t, err)
}
