package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	Port      string
	DBPath    string
	GinMode   string
	LogLevel  string
	LogFormat string

	// CountCacheTTL bounds how long a computed total may be reused
	CountCacheTTL time.Duration

	// Per-IP request budget
	RateLimit  int
	RateWindow time.Duration
}

// Load 加载配置. A CONFIG_FILE that cannot be read or parsed is an error.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", ":8080")
	v.SetDefault("DB_PATH", "./data/police_data.db")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("COUNT_CACHE_TTL", "5m")
	v.SetDefault("RATE_LIMIT", 120)
	v.SetDefault("RATE_WINDOW", "1m")

	// Optional config file; env vars still take precedence
	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	port := v.GetString("PORT")
	if port != "" && !strings.Contains(port, ":") {
		port = ":" + port
	}

	ttl := v.GetDuration("COUNT_CACHE_TTL")
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	mode := strings.ToLower(v.GetString("GIN_MODE"))
	switch mode {
	case "debug", "release", "test":
	default:
		mode = "release"
	}

	window := v.GetDuration("RATE_WINDOW")
	if window <= 0 {
		window = time.Minute
	}

	return &Config{
		Port:          port,
		DBPath:        v.GetString("DB_PATH"),
		GinMode:       mode,
		LogLevel:      v.GetString("LOG_LEVEL"),
		LogFormat:     v.GetString("LOG_FORMAT"),
		CountCacheTTL: ttl,
		RateLimit:     v.GetInt("RATE_LIMIT"),
		RateWindow:    window,
	}
}
