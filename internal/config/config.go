package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

// BackendConfig points at the REST booking backend. A zero Timeout leaves
// requests unbounded.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedisConfig enables the teacher cache. An empty Addr disables it.
type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TeacherTTL time.Duration
}

type CookieConfig struct {
	Name   string
	Secret string
	Secure bool
}

type ExpiryConfig struct {
	Enabled  bool
	Schedule string
}

type AppConfig struct {
	Environment      string
	HTTP             HTTPConfig
	Logging          LoggingConfig
	Backend          BackendConfig
	Redis            RedisConfig
	Cookie           CookieConfig
	Expiry           ExpiryConfig
	AllowCORSOrigins []string
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

func Load() (*AppConfig, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	return load(v)
}

// LoadFile reads a specific config file instead of searching for one.
func LoadFile(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*AppConfig, error) {
	v.SetEnvPrefix("YOGA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return fmt.Errorf("backend.baseurl is required")
	}
	if c.IsProduction() && c.Cookie.Secret == defaultCookieSecret {
		return fmt.Errorf("cookie.secret must be set in production")
	}
	return nil
}

const defaultCookieSecret = "yoga-dev-secret"

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 4200)
	v.SetDefault("http.readtimeout", "10s")
	v.SetDefault("http.writetimeout", "0s") // event stream stays open
	v.SetDefault("http.idletimeout", "60s")

	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "console")

	v.SetDefault("backend.baseurl", "http://localhost:8080")
	v.SetDefault("backend.timeout", "0s")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.teacherttl", "5m")

	v.SetDefault("cookie.name", "yoga-flash")
	v.SetDefault("cookie.secret", defaultCookieSecret)
	v.SetDefault("cookie.secure", false)

	v.SetDefault("expiry.enabled", true)
	v.SetDefault("expiry.schedule", "@every 30s")

	v.SetDefault("allowcorsorigins", []string{})
}
