package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	DB       *DBconfig
	RabbitMq *RabbitMqconfig
	Redis    *Redisconfig
	Srv      *Serviceconfig
	App      *Appconfig
	Log      *Loggerconfig
}

type DBconfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}
type RabbitMqconfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
}
type Redisconfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}
type Serviceconfig struct {
	AuthServicePort  string `yaml:"auth_service"`
	OrderServicePort string `yaml:"order_service"`
}
type Appconfig struct {
	JwtSecret string `yaml:"jwt_secret"`
}
type Loggerconfig struct {
	Level string `yaml:"level"`
}

func New() (*Config, error) {
	getEnv := func(key, def string) string {
		val := os.Getenv(key)
		if val == "" {
			fmt.Printf("config: %s not set, using default %q\n", key, def)
			return def
		}
		return val
	}

	getEnvInt := func(key string, def int) int {
		valStr := os.Getenv(key)
		if valStr == "" {
			fmt.Printf("config: %s not set, using default %d\n", key, def)
			return def
		}
		val, err := strconv.Atoi(valStr)
		if err != nil {
			fmt.Printf("config: %s is not a number, using default %d\n", key, def)
			return def
		}
		return val
	}

	cnf := &Config{
		DB: &DBconfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "fuelgo_user"),
			Password: getEnv("DB_PASSWORD", "fuelgo_pass"),
			Database: getEnv("DB_NAME", "fuelgo_db"),
		},
		RabbitMq: &RabbitMqconfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			VHost:    getEnv("RABBITMQ_VHOST", ""),
		},
		Redis: &Redisconfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Srv: &Serviceconfig{
			AuthServicePort:  getEnv("AUTH_SERVICE_PORT", "5000"),
			OrderServicePort: getEnv("ORDER_SERVICE_PORT", "5001"),
		},
		App: &Appconfig{
			JwtSecret: getEnv("JWT_SECRET", "fuelgo-secret-key"),
		},
		Log: &Loggerconfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
		},
	}

	return cnf, nil
}
