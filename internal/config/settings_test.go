package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ASTEROIDS_CONFIG", "")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Game.TickRate != 60 || s.Game.MaxParticles != 1000 || s.Game.BossMultiHit {
		t.Errorf("game = %+v", s.Game)
	}
	if s.Display.Backend != "ansi" || !s.Audio.Enabled || s.Audio.Dir != "" {
		t.Errorf("display = %+v audio = %+v", s.Display, s.Audio)
	}
	if s.Store.Backend != "file" || s.Store.Path != "high_score.json" {
		t.Errorf("store = %+v", s.Store)
	}
	if got := s.SSH.Addr(); got != "[::]:2222" {
		t.Errorf("ssh addr = %q", got)
	}
	if got := s.Web.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("web addr = %q", got)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ASTEROIDS_CONFIG", "")
	t.Setenv("ASTEROIDS_GAME_TICK_RATE", "30")
	t.Setenv("ASTEROIDS_GAME_BOSS_MULTI_HIT", "true")
	t.Setenv("ASTEROIDS_DISPLAY_BACKEND", "tcell")
	t.Setenv("ASTEROIDS_STORE_BACKEND", "redis")
	t.Setenv("ASTEROIDS_STORE_REDIS_ADDR", "cache:6380")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Game.TickRate != 30 || !s.Game.BossMultiHit {
		t.Errorf("game = %+v", s.Game)
	}
	if s.Display.Backend != "tcell" {
		t.Errorf("display backend = %q", s.Display.Backend)
	}
	if s.Store.Backend != "redis" || s.Store.Redis.Addr != "cache:6380" {
		t.Errorf("store = %+v", s.Store)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asteroids.yaml")
	data := "store:\n  backend: memory\naudio:\n  enabled: false\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ASTEROIDS_CONFIG", path)
	t.Setenv("ASTEROIDS_LOG_LEVEL", "warn")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Store.Backend != "memory" || s.Audio.Enabled {
		t.Errorf("file values not applied: store=%+v audio=%+v", s.Store, s.Audio)
	}
	if s.Log.Level != "warn" {
		t.Errorf("log level = %q, env should win over the file", s.Log.Level)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"tick rate", "ASTEROIDS_GAME_TICK_RATE", "0"},
		{"display", "ASTEROIDS_DISPLAY_BACKEND", "opengl"},
		{"store", "ASTEROIDS_STORE_BACKEND", "floppy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ASTEROIDS_CONFIG", "")
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("Load accepted %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("ASTEROIDS_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "nope.yaml") {
		t.Errorf("Load error = %v", err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ASTEROIDS_TEST_VALUE", "set")
	if got := GetEnv("ASTEROIDS_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv = %q", got)
	}
	if got := GetEnv("ASTEROIDS_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q", got)
	}
	t.Setenv("ASTEROIDS_TEST_BLANK", "  ")
	if got := GetEnv("ASTEROIDS_TEST_BLANK", "fallback"); got != "fallback" {
		t.Errorf("blank value: GetEnv = %q", got)
	}
}

func TestNewLogger(t *testing.T) {
	var buf strings.Builder
	logger, err := LogSettings{Level: "warn"}.NewLogger(&buf, "test")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "score", 3)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") || !strings.Contains(out, "score=3") {
		t.Errorf("log output = %q", out)
	}

	if _, err := (LogSettings{Level: "loud"}).NewLogger(&buf, "test"); err == nil {
		t.Error("unknown level accepted")
	}
}
