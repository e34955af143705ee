package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	MongoURL    string   `envconfig:"MONGO_URL" default:"mongodb://localhost:27017"`
	DBName      string   `envconfig:"DB_NAME" default:"anukriti"`
	JWTSecret   string   `envconfig:"JWT_SECRET" default:"your-secret-key-change-in-production"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	ListenAddr  string   `envconfig:"LISTEN_ADDR" default:":8080"`
}

// Load reads the configuration from the environment. MONGO_PUBLIC_URL, when
// set, takes precedence over MONGO_URL (hosted deployments expose both).
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if publicURL := os.Getenv("MONGO_PUBLIC_URL"); publicURL != "" {
		cfg.MongoURL = publicURL
	}
	return &cfg, nil
}
