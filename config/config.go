package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
// It is built once at startup and passed explicitly into the components that
// need it; nothing reads the environment after Load returns.
type Config struct {
	EventURL string

	MinValueScore float64
	MinTicketQty  int
	DealLabels    []string

	CheckInterval    int // seconds between polling cycles
	DigestInterval   int // seconds between cumulative digests
	DigestTopN       int
	AlertTopK        int
	HeartbeatSeconds int

	PushoverUserKey  string
	PushoverAPIToken string

	StateBackend string // "file" or "postgres"
	StateFile    string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	ChromeBin            string
	RenderTimeoutSeconds int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		EventURL: strings.TrimSpace(getEnv("EVENT_URL", "")),

		MinValueScore: getEnvFloat("MIN_VALUE_SCORE", 9.5),
		MinTicketQty:  getEnvInt("MIN_TICKET_QTY", 0),
		DealLabels:    splitList(getEnv("DEAL_LABELS", "")),

		CheckInterval:    getEnvInt("CHECK_INTERVAL_SECONDS", 300),
		DigestInterval:   getEnvInt("DIGEST_INTERVAL_SECONDS", 3600),
		DigestTopN:       getEnvInt("DIGEST_TOP_N", 10),
		AlertTopK:        getEnvInt("ALERT_TOP_K", 12),
		HeartbeatSeconds: getEnvInt("HEARTBEAT_SECONDS", 60),

		PushoverUserKey:  strings.TrimSpace(getEnv("PUSHOVER_USER_KEY", "")),
		PushoverAPIToken: strings.TrimSpace(getEnv("PUSHOVER_API_TOKEN", "")),

		StateBackend: getEnv("STATE_BACKEND", "file"),
		StateFile:    getEnv("STATE_FILE", "./state/seen_listings.json"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "watcher"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "watcher123"),
		PostgresDB:       getEnv("POSTGRES_DB", "ticket_alerts"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		ChromeBin:            getEnv("CHROME_BIN", ""),
		RenderTimeoutSeconds: getEnvInt("RENDER_TIMEOUT_SECONDS", 90),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

// splitList parses a comma-separated env value into trimmed, non-empty items.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
