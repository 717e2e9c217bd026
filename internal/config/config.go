// internal/config/config.go
package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/supplysight/backend/internal/engine"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Restock  RestockConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	Enabled             bool
	RedisURL            string
	RedisHost           string
	RedisPort           string
	RedisPassword       string
	RedisDB             int
	AnalyticsTTLSeconds int
}

// RestockConfig carries the restocking policy defaults; any field left at
// zero falls back to the engine defaults.
type RestockConfig struct {
	SafetyStockDays      int
	RestockThresholdDays int
	ReplenishmentDays    int
	VelocityLookbackDays int
	DefaultVelocity      float64
	DefaultShipmentTime  float64
}

// EngineParams converts the config into normalized engine parameters.
func (c RestockConfig) EngineParams() engine.Params {
	return engine.Params{
		SafetyStockDays:      c.SafetyStockDays,
		RestockThresholdDays: c.RestockThresholdDays,
		ReplenishmentDays:    c.ReplenishmentDays,
		VelocityLookbackDays: c.VelocityLookbackDays,
		DefaultVelocity:      c.DefaultVelocity,
		DefaultShipmentTime:  c.DefaultShipmentTime,
	}.Normalize()
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "supplysight")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_ANALYTICS_TTL_SECONDS", 60)
		viper.SetDefault("RESTOCK_SAFETY_STOCK_DAYS", engine.DefaultSafetyStockDays)
		viper.SetDefault("RESTOCK_THRESHOLD_DAYS", engine.DefaultRestockThresholdDays)
		viper.SetDefault("RESTOCK_REPLENISHMENT_DAYS", engine.DefaultReplenishmentDays)
		viper.SetDefault("RESTOCK_VELOCITY_LOOKBACK_DAYS", engine.DefaultVelocityLookbackDays)
		viper.SetDefault("RESTOCK_DEFAULT_VELOCITY", engine.DefaultVelocity)
		viper.SetDefault("RESTOCK_DEFAULT_SHIPMENT_TIME", engine.DefaultShipmentTimeDays)

		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Cache: CacheConfig{
				Enabled:             viper.GetBool("CACHE_ENABLED"),
				RedisURL:            viper.GetString("REDIS_URL"),
				RedisHost:           viper.GetString("REDIS_HOST"),
				RedisPort:           viper.GetString("REDIS_PORT"),
				RedisPassword:       viper.GetString("REDIS_PASSWORD"),
				RedisDB:             viper.GetInt("REDIS_DB"),
				AnalyticsTTLSeconds: viper.GetInt("CACHE_ANALYTICS_TTL_SECONDS"),
			},
			Restock: RestockConfig{
				SafetyStockDays:      viper.GetInt("RESTOCK_SAFETY_STOCK_DAYS"),
				RestockThresholdDays: viper.GetInt("RESTOCK_THRESHOLD_DAYS"),
				ReplenishmentDays:    viper.GetInt("RESTOCK_REPLENISHMENT_DAYS"),
				VelocityLookbackDays: viper.GetInt("RESTOCK_VELOCITY_LOOKBACK_DAYS"),
				DefaultVelocity:      viper.GetFloat64("RESTOCK_DEFAULT_VELOCITY"),
				DefaultShipmentTime:  viper.GetFloat64("RESTOCK_DEFAULT_SHIPMENT_TIME"),
			},
		}
	})

	return instance
}
