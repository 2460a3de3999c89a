package configs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config dikumpulkan sekali saat start lalu dioper ke semua komponen.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Limits   LimitsConfig   `mapstructure:"limits"`
}

type AppConfig struct {
	Name           string        `mapstructure:"name"`
	Environment    string        `mapstructure:"environment"`
	Port           string        `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	AllowOrigins   []string      `mapstructure:"allow_origins"`
}

type DatabaseConfig struct {
	Host           string        `mapstructure:"host"`
	Port           string        `mapstructure:"port"`
	Name           string        `mapstructure:"name"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	SSLMode        string        `mapstructure:"sslmode"`
	MaxOpenConns   int           `mapstructure:"max_open_conns"`
	MaxIdleConns   int           `mapstructure:"max_idle_conns"`
	ConnMaxIdle    time.Duration `mapstructure:"conn_max_idle"`
	ConnMaxLife    time.Duration `mapstructure:"conn_max_life"`
	StatementLimit time.Duration `mapstructure:"statement_timeout"`
	AutoMigrate    bool          `mapstructure:"auto_migrate"`
}

// DSN memakai URL form supaya statement_timeout bisa ikut di options.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=shiftlink&options=-c statement_timeout=%d",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode, d.StatementLimit.Milliseconds(),
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled: redis opsional, tanpa address limiter jatuh ke memori.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Address) != ""
}

type AuthConfig struct {
	JWTSecret            string        `mapstructure:"jwt_secret"`
	AccessTTL            time.Duration `mapstructure:"access_ttl"`
	RevokedPurgeInterval time.Duration `mapstructure:"revoked_purge_interval"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type LimitsConfig struct {
	GlobalPerMinute int           `mapstructure:"global_per_minute"`
	LoginPerMinute  int           `mapstructure:"login_per_minute"`
	FlagsPerWindow  int           `mapstructure:"flags_per_window"`
	FlagWindow      time.Duration `mapstructure:"flag_window"`
}

// =======================
// LOADER
// =======================

// Load membaca .env (kalau ada), config.yaml (kalau ada), lalu ENV.
// Nama ENV lama tetap dihormati: DB_HOST, DB_USER, JWT_SECRET, PORT, dst.
func Load() (*Config, error) {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("SHIFTLINK")
	v.AutomaticEnv()

	setDefaults(v)
	bindLegacyEnv(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "shiftlink")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", "3000")
	v.SetDefault("app.request_timeout", 5*time.Second)
	v.SetDefault("app.allow_origins", []string{"http://localhost:3000", "http://localhost:5173"})

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "shiftlink")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_idle", 60*time.Second)
	v.SetDefault("database.conn_max_life", 10*time.Minute)
	v.SetDefault("database.statement_timeout", 3*time.Second)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("auth.access_ttl", 24*time.Hour)
	v.SetDefault("auth.revoked_purge_interval", time.Hour)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("limits.global_per_minute", 100)
	v.SetDefault("limits.login_per_minute", 5)
	v.SetDefault("limits.flags_per_window", 5)
	v.SetDefault("limits.flag_window", time.Hour)
}

// bindLegacyEnv: key viper -> nama ENV yang sudah dipakai di deployment.
func bindLegacyEnv(v *viper.Viper) {
	legacy := map[string]string{
		"app.port":          "PORT",
		"app.environment":   "APP_ENVIRONMENT",
		"database.host":     "DB_HOST",
		"database.port":     "DB_PORT",
		"database.name":     "DB_NAME",
		"database.user":     "DB_USER",
		"database.password": "DB_PASSWORD",
		"database.sslmode":  "DB_SSLMODE",
		"redis.address":     "REDIS_ADDR",
		"redis.password":    "REDIS_PASSWORD",
		"auth.jwt_secret":   "JWT_SECRET",
		"logging.level":     "LOG_LEVEL",
	}
	for key, env := range legacy {
		_ = v.BindEnv(key, "SHIFTLINK_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env)
	}
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET belum diset")
	}
	if c.Auth.AccessTTL <= 0 {
		return fmt.Errorf("config: auth.access_ttl must be positive")
	}
	return nil
}
