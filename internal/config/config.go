package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreMySQL  = "mysql"
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Config holds application level configuration loaded from environment variables.
// It is built once at process start and passed by pointer to the components that need it.
type Config struct {
	ServerPort string `env:"PORT" envDefault:"3000"`

	StoreDriver   string `env:"STORE_DRIVER" envDefault:"mysql"`
	MySQLDSN      string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/training_diary?charset=utf8mb4&parseTime=True&loc=UTC"`
	MongoURI      string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"TrainingDiary"`
	ResetDB       bool   `env:"RESET_DB" envDefault:"false"`

	RedisEnabled  bool   `env:"REDIS_ENABLED" envDefault:"true"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	JWTSecret  string `env:"JWT_SECRET" envDefault:"change-me"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`

	APIName     string `env:"API_NAME" envDefault:"Training Diary API"`
	APIVersion  string `env:"API_VERSION" envDefault:"1.0.0"`
	SwaggerHost string `env:"SWAGGER_HOST"`
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StoreDriver {
	case StoreMySQL, StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	return nil
}
