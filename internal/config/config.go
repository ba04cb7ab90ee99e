package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Политики пустых выборок для списочных эндпоинтов
const (
	EmptyResultNotFound = "not_found"
	EmptyResultEmpty    = "empty"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	CORS      CORSConfig
	API       APIConfig
	RateLimit RateLimitConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к базе данных
type DatabaseConfig struct {
	// Driver: "postgres" (по умолчанию) или "sqlite" для локальной разработки
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// SQLitePath: файл базы для Driver="sqlite"
	SQLitePath     string `mapstructure:"sqlite_path"`
	MigrationsPath string `mapstructure:"migrations_path"`
}

// RedisConfig содержит настройки подключения к Redis (используется только rate limiter)
type RedisConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Mode     string   `mapstructure:"mode"`
	Addrs    []string `mapstructure:"addrs"`
	Addr     string   `mapstructure:"addr"`
	Password string   `mapstructure:"password"`
	DB       int      `mapstructure:"db"`
	// MasterName: только для режима "sentinel"
	MasterName string `mapstructure:"master_name"`
}

// CORSConfig содержит настройки CORS
type CORSConfig struct {
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

// APIConfig содержит настройки поведения API
type APIConfig struct {
	QuestionsPerPage  int    `mapstructure:"questions_per_page"`
	EmptyResultPolicy string `mapstructure:"empty_result_policy"`
}

// RateLimitConfig содержит настройки ограничения частоты запросов
type RateLimitConfig struct {
	MaxRequests int `mapstructure:"max_requests"`
	WindowSec   int `mapstructure:"window_sec"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// IsSQLite сообщает, используется ли SQLite вместо PostgreSQL
func (d *DatabaseConfig) IsSQLite() bool {
	return d.Driver == "sqlite"
}

// EmptyResultIsNotFound сообщает, отвечать ли 404 на пустые списки
func (a *APIConfig) EmptyResultIsNotFound() bool {
	return a.EmptyResultPolicy != EmptyResultEmpty
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.readTimeout", 15)
	vip.SetDefault("server.writeTimeout", 15)
	vip.SetDefault("database.driver", "postgres")
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.sqlite_path", "trivia.db")
	vip.SetDefault("database.migrations_path", "file://migrations")
	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("cors.allowed_origin", "http://localhost:3000")
	vip.SetDefault("api.questions_per_page", 10)
	vip.SetDefault("api.empty_result_policy", EmptyResultNotFound)
	vip.SetDefault("ratelimit.max_requests", 120)
	vip.SetDefault("ratelimit.window_sec", 60)
}

func bindEnv(vip *viper.Viper) {
	// Привязка для секции Database
	vip.BindEnv("database.driver", "DATABASE_DRIVER")
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.sqlite_path", "DATABASE_SQLITE_PATH")
	vip.BindEnv("database.migrations_path", "DATABASE_MIGRATIONS_PATH")

	// Привязка для секции Redis
	vip.BindEnv("redis.enabled", "REDIS_ENABLED")
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS")
	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("cors.allowed_origin", "CORS_ALLOWED_ORIGIN")
	vip.BindEnv("api.questions_per_page", "API_QUESTIONS_PER_PAGE")
	vip.BindEnv("api.empty_result_policy", "API_EMPTY_RESULT_POLICY")
	vip.BindEnv("ratelimit.max_requests", "RATELIMIT_MAX_REQUESTS")
	vip.BindEnv("ratelimit.window_sec", "RATELIMIT_WINDOW_SEC")
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр Viper, чтобы избежать глобального состояния

	setDefaults(vip)
	bindEnv(vip)

	if configPath != "" {
		vip.SetConfigFile(configPath)
		// Отсутствие файла не фатально: значения берутся из env и умолчаний
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Database Driver: %s", cfg.Database.Driver)
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Redis Enabled: %t (mode: %s)", cfg.Redis.Enabled, cfg.Redis.Mode)
		log.Printf("CORS Origin: %s", cfg.CORS.AllowedOrigin)
		log.Printf("Questions Per Page: %d", cfg.API.QuestionsPerPage)
		log.Printf("Empty Result Policy: %s", cfg.API.EmptyResultPolicy)
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("-----------------------------------------")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
			return fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("database.sqlite_path is required for sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %q", c.Database.Driver)
	}

	switch c.API.EmptyResultPolicy {
	case EmptyResultNotFound, EmptyResultEmpty:
	default:
		return fmt.Errorf("api.empty_result_policy must be %q or %q, got %q",
			EmptyResultNotFound, EmptyResultEmpty, c.API.EmptyResultPolicy)
	}

	if c.API.QuestionsPerPage < 1 {
		return fmt.Errorf("api.questions_per_page must be positive, got %d", c.API.QuestionsPerPage)
	}

	if c.Redis.Enabled && len(c.Redis.Addrs) == 0 && c.Redis.Addr == "" {
		return fmt.Errorf("redis is enabled but neither redis.addrs nor redis.addr is set")
	}
	return nil
}
