package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	GinMode            string
	TZ                 string
	Port               string
	DatabaseURL        string
	DBConnectAttempts  int
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

const defaultDatabaseURL = "readinglist.db"

// Load reads the configuration from the environment. In debug mode a .env
// file in the working directory is loaded first when present.
func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		loadDotEnv(".env")
	}

	cfg := &Config{
		GinMode:            getenv("GIN_MODE", "debug"),
		TZ:                 getenv("TZ", "UTC"),
		Port:               getenv("PORT", "3001"),
		DatabaseURL:        getenv("DATABASE_URL", defaultDatabaseURL),
		DBConnectAttempts:  getenvInt("DB_CONNECT_ATTEMPTS", 10),
		CORSAllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		RateLimitRPS:       getenvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst:     getenvInt("RATE_LIMIT_BURST", 20),
	}

	return cfg
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}

	if err := godotenv.Load(path); err != nil {
		log.Printf("warning: could not load %s: %v", path, err)
	} else {
		log.Printf("loaded %s", path)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("warning: invalid %s=%q, using %v", key, v, def)
		return def
	}
	return f
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
