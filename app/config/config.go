package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// LocalDevOrigin is always allow-listed alongside the deployed web app.
const LocalDevOrigin = "http://localhost:3000"

var validate = validator.New()

// Config carries everything the service reads from the environment. It
// is loaded once at startup and handed to constructors; nothing reads
// the environment after that.
type Config struct {
	Port           int
	DataDir        string
	ProjectID      string
	CollectionName string `validate:"required"`
	WebAppOrigin   string `validate:"required,url"`
	GatewayDomain  string `validate:"required"`
	SharedSecret   string `validate:"required"`
}

// Load reads the configuration from the environment. PORT follows the
// platform convention; everything else is BLOG_-prefixed. Origin,
// gateway domain and shared secret have no safe defaults and must be
// set.
func Load() (Config, error) {
	cfg := Config{
		Port:           8080,
		DataDir:        envOr("BLOG_DATA_DIR", "data/badger"),
		ProjectID:      envOr("BLOG_PROJECT_ID", "dev"),
		CollectionName: envOr("BLOG_COLLECTION", "test-blog"),
		WebAppOrigin:   os.Getenv("BLOG_WEBAPP_ORIGIN"),
		GatewayDomain:  os.Getenv("BLOG_GATEWAY_DOMAIN"),
		SharedSecret:   os.Getenv("BLOG_SHARED_SECRET"),
	}

	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", p, err)
		}
		cfg.Port = port
	}

	if err := validate.Struct(&cfg); err != nil {
		return Config{}, fmt.Errorf("incomplete configuration: %w", err)
	}
	return cfg, nil
}

// AllowedOrigins is the CORS allow-list: the deployed web app plus local
// development.
func (c Config) AllowedOrigins() []string {
	return []string{c.WebAppOrigin, LocalDevOrigin}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
