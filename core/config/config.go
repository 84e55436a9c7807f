package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OTel           OTelConfig
	GitHub         GitHubConfig
	Chat           ChatConfig
	Mail           MailConfig
	Storage        StorageConfig
	Cache          CacheConfig
	Env            string
	Port           string
	AllowedOrigins []string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// GitHubConfig covers the public profile the context builder reads.
// APIToken is optional; unauthenticated requests work within GitHub's
// anonymous rate limits.
type GitHubConfig struct {
	Username string
	APIToken string
}

// ChatConfig points at an OpenAI-compatible inference endpoint.
// Defaults target GitHub Models.
type ChatConfig struct {
	Token   string
	Model   string
	BaseURL string
}

type MailConfig struct {
	APIKey string
	From   string
	Owner  string
}

type StorageConfig struct {
	Endpoint       string
	Bucket         string
	Region         string
	AccessKey      string
	SecretKey      string
	ForcePathStyle bool
}

type CacheConfig struct {
	RedisURL string
}

// Load loads configuration from environment variables.
// In development it first loads a local .env file if one exists.
func Load() (Config, error) {
	if getEnv("PORTFOLIO_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:            getEnv("PORTFOLIO_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "portfolio-api"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		GitHub: GitHubConfig{
			Username: getEnv("GITHUB_PUBLIC_USERNAME", ""),
			APIToken: getEnv("GITHUB_API_TOKEN", ""),
		},
		Chat: ChatConfig{
			Token:   getEnv("GITHUB_MODELS_TOKEN", ""),
			Model:   getEnv("GITHUB_MODELS_MODEL", "openai/gpt-5"),
			BaseURL: getEnv("GITHUB_MODELS_BASE_URL", "https://models.github.ai/inference"),
		},
		Mail: MailConfig{
			APIKey: getEnv("RESEND_API_KEY", ""),
			From:   getEnv("CONTACT_FROM_ADDRESS", "re.replay@muaiadhadad.me"),
			Owner:  getEnv("CONTACT_OWNER_ADDRESS", "muaiad@muaiadhadad.me"),
		},
		Storage: StorageConfig{
			Endpoint:       getEnv("MINIO_ENDPOINT", ""),
			Bucket:         getEnv("MINIO_BUCKET", ""),
			Region:         getEnv("MINIO_REGION", "us-east-1"),
			AccessKey:      getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey:      getEnv("MINIO_SECRET_KEY", ""),
			ForcePathStyle: getEnvBool("MINIO_FORCE_PATH_STYLE", true),
		},
		Cache: CacheConfig{
			RedisURL: getEnv("REDIS_URL", ""),
		},
	}

	if cfg.GitHub.Username == "" {
		return Config{}, fmt.Errorf("GITHUB_PUBLIC_USERNAME is required")
	}

	// A missing GITHUB_MODELS_TOKEN is intentionally not fatal here:
	// /api/chat reports it per request so the rest of the site keeps working.

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c ChatConfig) Enabled() bool {
	return c.Token != ""
}

func (c StorageConfig) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		return value == "true" || value == "1"
	}
	return fallback
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
