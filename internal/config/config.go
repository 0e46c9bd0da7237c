package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	LLMAPIKey  string `env:"LLM_API_KEY,required"`
	LLMBaseURL string `env:"LLM_BASE_URL" envDefault:"https://api.openai.com/v1"`
	LLMModel   string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	ImageModel string `env:"IMAGE_MODEL" envDefault:"dall-e-3"`
	ImageSize  string `env:"IMAGE_SIZE" envDefault:"1024x1024"`

	TitleTimeout     time.Duration `env:"TITLE_TIMEOUT" envDefault:"20s"`
	ImageTimeout     time.Duration `env:"IMAGE_TIMEOUT" envDefault:"90s"`
	ChatTimeout      time.Duration `env:"CHAT_TIMEOUT" envDefault:"30s"`
	ImageConcurrency int           `env:"IMAGE_CONCURRENCY" envDefault:"4"`

	PlaceholderBaseURL string `env:"PLACEHOLDER_BASE_URL"`
	ImageSavePath      string `env:"IMAGE_SAVE_PATH" envDefault:"./data/images"`
	ImagePublicBaseURL string `env:"IMAGE_PUBLIC_BASE_URL"`

	SessionTokenSecret string        `env:"SESSION_TOKEN_SECRET"`
	SessionTokenTTL    time.Duration `env:"SESSION_TOKEN_TTL" envDefault:"72h"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	ChatRateLimit       int           `env:"CHAT_RATE_LIMIT" envDefault:"20"`
	RegenerateRateLimit int           `env:"REGENERATE_RATE_LIMIT" envDefault:"5"`
	RateLimitWindow     time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"10m"`

	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:8787"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// AllowedOrigins devuelve la lista de orígenes CORS sin vacíos.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
