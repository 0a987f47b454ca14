package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa todas as configurações da aplicação
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	Auth      AuthConfig
	Platform  PlatformConfig
	Scheduler SchedulerConfig
	Log       LogConfig
}

// ServerConfig contém as configurações do servidor HTTP
type ServerConfig struct {
	Port           string
	Mode           string
	BasePath       string
	AllowedOrigins []string
}

// DatabaseConfig contém as configurações do PostgreSQL
type DatabaseConfig struct {
	URL             string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int32
	MinConnections  int32
	MaxConnLifetime time.Duration
	AutoMigrate     bool
}

// RedisConfig contém as configurações do Redis (cache e sessões)
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	StatsTTL time.Duration
}

// NATSConfig contém as configurações de publicação de eventos
type NATSConfig struct {
	URL     string
	Enabled bool
}

// AuthConfig contém as configurações de autenticação
type AuthConfig struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	TrialDays       int
}

// PlatformConfig contém os dados da plataforma (antes fixos no código)
type PlatformConfig struct {
	BaseDomain string
	Currency   string
	Locale     string
}

// SchedulerConfig contém os horários dos jobs em background
type SchedulerConfig struct {
	Enabled          bool
	AnalyticsRollup  string
	TrialExpirySweep string
}

// LogConfig contém as configurações de log
type LogConfig struct {
	Level string
	JSON  bool
}

// ConnectionString retorna a string de conexão para o PostgreSQL
func (c DatabaseConfig) ConnectionString() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// Load lê a configuração das variáveis de ambiente
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	return &Config{
		Server: ServerConfig{
			Port:           v.GetString("SERVER_PORT"),
			Mode:           v.GetString("GIN_MODE"),
			BasePath:       v.GetString("API_BASE_PATH"),
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			URL:             v.GetString("DATABASE_URL"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSL_MODE"),
			MaxConnections:  v.GetInt32("DB_MAX_CONNECTIONS"),
			MinConnections:  v.GetInt32("DB_MIN_CONNECTIONS"),
			MaxConnLifetime: time.Duration(v.GetInt("DB_MAX_LIFETIME")) * time.Second,
			AutoMigrate:     v.GetBool("AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			StatsTTL: v.GetDuration("STATS_CACHE_TTL"),
		},
		NATS: NATSConfig{
			URL:     v.GetString("NATS_URL"),
			Enabled: v.GetBool("NATS_ENABLED"),
		},
		Auth: AuthConfig{
			JWTSecret:       v.GetString("JWT_SECRET_KEY"),
			AccessTokenTTL:  v.GetDuration("JWT_ACCESS_TTL"),
			RefreshTokenTTL: v.GetDuration("JWT_REFRESH_TTL"),
			TrialDays:       v.GetInt("TRIAL_DAYS"),
		},
		Platform: PlatformConfig{
			BaseDomain: v.GetString("PLATFORM_BASE_DOMAIN"),
			Currency:   v.GetString("PLATFORM_CURRENCY"),
			Locale:     v.GetString("PLATFORM_LOCALE"),
		},
		Scheduler: SchedulerConfig{
			Enabled:          v.GetBool("SCHEDULER_ENABLED"),
			AnalyticsRollup:  v.GetString("SCHEDULE_ANALYTICS_ROLLUP"),
			TrialExpirySweep: v.GetString("SCHEDULE_TRIAL_EXPIRY"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			JSON:  v.GetBool("LOG_JSON"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("API_BASE_PATH", "/api")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "toko_digital")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNECTIONS", 10)
	v.SetDefault("DB_MIN_CONNECTIONS", 2)
	v.SetDefault("DB_MAX_LIFETIME", 300)
	v.SetDefault("AUTO_MIGRATE", false)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("STATS_CACHE_TTL", "5m")

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NATS_ENABLED", false)

	v.SetDefault("JWT_ACCESS_TTL", "24h")
	v.SetDefault("JWT_REFRESH_TTL", "720h")
	v.SetDefault("TRIAL_DAYS", 14)

	v.SetDefault("PLATFORM_BASE_DOMAIN", "toko-digital.com")
	v.SetDefault("PLATFORM_CURRENCY", "IDR")
	v.SetDefault("PLATFORM_LOCALE", "id-ID")

	v.SetDefault("SCHEDULER_ENABLED", true)
	v.SetDefault("SCHEDULE_ANALYTICS_ROLLUP", "0 5 0 * * *")
	v.SetDefault("SCHEDULE_TRIAL_EXPIRY", "0 */15 * * * *")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", false)
}

// splitList separa uma lista delimitada por vírgulas, ignorando itens vazios
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
