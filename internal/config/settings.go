// Package config loads runtime settings for the game frontends.
package config

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Settings is the runtime configuration shared by every frontend.
type Settings struct {
	Game    GameSettings    `mapstructure:"game"`
	Display DisplaySettings `mapstructure:"display"`
	Audio   AudioSettings   `mapstructure:"audio"`
	Store   StoreSettings   `mapstructure:"store"`
	Log     LogSettings     `mapstructure:"log"`
	SSH     SSHSettings     `mapstructure:"ssh"`
	Web     WebSettings     `mapstructure:"web"`
}

type GameSettings struct {
	TickRate     int  `mapstructure:"tick_rate"`
	MaxParticles int  `mapstructure:"max_particles"`
	BossMultiHit bool `mapstructure:"boss_multi_hit"`
}

// DisplaySettings selects the local renderer: "ansi" or "tcell".
type DisplaySettings struct {
	Backend string `mapstructure:"backend"`
}

// AudioSettings controls sound. An empty Dir uses synthesized sounds.
type AudioSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Dir     string `mapstructure:"dir"`
}

// StoreSettings selects the high score backend:
// "file", "redis", "postgres" or "memory".
type StoreSettings struct {
	Backend  string           `mapstructure:"backend"`
	Path     string           `mapstructure:"path"`
	Redis    RedisSettings    `mapstructure:"redis"`
	Postgres PostgresSettings `mapstructure:"postgres"`
}

type RedisSettings struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

type PostgresSettings struct {
	DSN string `mapstructure:"dsn"`
}

type LogSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type SSHSettings struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	HostKeyPath string `mapstructure:"host_key_path"`
}

// Addr returns the listen address of the SSH server.
func (s SSHSettings) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

type WebSettings struct {
	Host           string `mapstructure:"host"`
	Port           string `mapstructure:"port"`
	SSHDisplayHost string `mapstructure:"ssh_display_host"`
}

// Addr returns the listen address of the web server.
func (w WebSettings) Addr() string {
	return net.JoinHostPort(w.Host, w.Port)
}

var defaults = map[string]any{
	"game.tick_rate":      60,
	"game.max_particles":  1000,
	"game.boss_multi_hit": false,

	"display.backend": "ansi",

	"audio.enabled": true,
	"audio.dir":     "",

	"store.backend":        "file",
	"store.path":           "high_score.json",
	"store.redis.addr":     "localhost:6379",
	"store.redis.password": "",
	"store.redis.db":       0,
	"store.redis.key":      "asteroid-avoidance:high_score",
	"store.postgres.dsn":   "",

	"log.level": "info",
	"log.file":  "asteroid-avoidance.log",

	"ssh.host":          "::",
	"ssh.port":          "2222",
	"ssh.host_key_path": "/app/keys/host_key",

	"web.host":             "0.0.0.0",
	"web.port":             "8080",
	"web.ssh_display_host": "your-server.com",
}

// GetEnv returns the value of the environment variable named by key, or
// fallback when it is unset or blank.
func GetEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

// Load reads settings from defaults, the optional file named by
// ASTEROIDS_CONFIG and ASTEROIDS_<SECTION>_<KEY> environment variables,
// in increasing priority.
func Load() (*Settings, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix("ASTEROIDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := GetEnv("ASTEROIDS_CONFIG", ""); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.Game.TickRate <= 0 {
		return fmt.Errorf("game.tick_rate must be positive, got %d", s.Game.TickRate)
	}
	switch s.Display.Backend {
	case "ansi", "tcell":
	default:
		return fmt.Errorf("unknown display.backend %q", s.Display.Backend)
	}
	switch s.Store.Backend {
	case "file", "redis", "postgres", "memory":
	default:
		return fmt.Errorf("unknown store.backend %q", s.Store.Backend)
	}
	return nil
}
