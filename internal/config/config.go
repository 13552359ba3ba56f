package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MongoURI      string
	MongoDatabase string

	RedisAddr     string
	RedisPassword string

	SessionTTL   time.Duration
	CookieSecure bool

	TemplatesGlob string
	StaticDir     string
}

func Load() Config {

	// Best-effort: a missing .env just means everything comes
	// from the real environment.
	_ = godotenv.Load()

	cfg := Config{

		AppPort: getenv("APP_PORT", "8080"),

		MongoURI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getenv("MONGO_DATABASE", "noteboard"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		SessionTTL:   getduration("SESSION_TTL", 24*time.Hour),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",

		TemplatesGlob: getenv("TEMPLATES_GLOB", "web/templates/*.html"),
		StaticDir:     getenv("STATIC_DIR", "web/static"),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
