package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Env               string `mapstructure:"env"`
	HTTPAddr          string `mapstructure:"HTTP_ADDR"`
	ConsumerHTTPAddr  string `mapstructure:"CONSUMER_HTTP_ADDR"`
	DBConnStr         string `mapstructure:"DB_CONN_STR"`
	RedisAddr         string `mapstructure:"RedisAddr"`
	RedisPassword     string `mapstructure:"RedisPassword"`
	KafkaBrokers      string `mapstructure:"KAFKA_BROKERS"`
	APIKey            string `mapstructure:"ApiKey"`
	RecommenderAPIURL string `mapstructure:"RECOMMENDER_API_URL"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	JWTExpiryMinutes  int    `mapstructure:"JWT_EXPIRY_MINUTES"`
}

var keys = []string{
	"env",
	"HTTP_ADDR",
	"CONSUMER_HTTP_ADDR",
	"DB_CONN_STR",
	"RedisAddr",
	"RedisPassword",
	"KAFKA_BROKERS",
	"ApiKey",
	"RECOMMENDER_API_URL",
	"JWT_SECRET",
	"JWT_EXPIRY_MINUTES",
}

// Load reads configuration from the environment, with an optional .env
// file as fallback.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("HTTP_ADDR", ":80")
	v.SetDefault("CONSUMER_HTTP_ADDR", ":8081")
	v.SetDefault("RECOMMENDER_API_URL", "http://localhost:5000")
	v.SetDefault("JWT_EXPIRY_MINUTES", 60*24)

	for _, key := range keys {
		// viper lower-cases keys; bind the exact env names the services use
		_ = v.BindEnv(strings.ToLower(key), key)
	}

	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// Brokers splits the comma separated KAFKA_BROKERS value.
func (c *Config) Brokers() []string {
	if c.KafkaBrokers == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func (c *Config) IsLocal() bool {
	return c.Env == "local"
}

// Validate checks what the API server cannot start without.
func (c *Config) Validate() error {
	if c.DBConnStr == "" {
		return fmt.Errorf("DB_CONN_STR is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.RecommenderAPIURL == "" {
		return fmt.Errorf("RECOMMENDER_API_URL is required")
	}
	return nil
}
