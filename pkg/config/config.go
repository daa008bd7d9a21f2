package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSessionSecret = "dev-session-secret-change-me"

type Config struct {
	Port             string
	Env              string
	DBDriver         string
	DatabaseURL      string
	MongoURI         string
	MongoDatabase    string
	RedisURL         string
	KafkaBrokers     []string
	KafkaTopic       string
	SessionSecret    string
	SessionTTL       time.Duration
	VisitDedupWindow time.Duration
	HomeFeedSize     int
}

// Load reads the configuration from the environment, after loading a .env
// file when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		DBDriver:         strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DatabaseURL:      getEnv("DATABASE_URL", "social.db"),
		MongoURI:         getEnv("MONGO_URI", ""),
		MongoDatabase:    getEnv("MONGO_DATABASE", "socialmedia"),
		RedisURL:         getEnv("REDIS_URL", ""),
		KafkaBrokers:     splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "social.relationships"),
		SessionSecret:    getEnv("SESSION_SECRET", devSessionSecret),
		SessionTTL:       getDuration("SESSION_TTL", 7*24*time.Hour),
		VisitDedupWindow: getDuration("VISIT_DEDUP_WINDOW", 0),
		HomeFeedSize:     getInt("HOME_FEED_SIZE", 10),
	}
	if cfg.SessionSecret == devSessionSecret && cfg.IsProduction() {
		log.Println("WARNING: SESSION_SECRET is not set; sessions are signed with the development secret.")
	}
	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("Invalid %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Invalid %s=%q, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
