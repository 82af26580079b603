package config

import (
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuracion del servicio. Se construye explicitamente
// y se pasa a cada constructor: nada de singletons mutables a nivel proceso,
// los tests arman su propia instancia aislada.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	// Directorio de registros planos de sesiones y baterias.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	OpenAIAPIKey         string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL        string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIModel          string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAITimeoutSeconds int    `env:"OPENAI_TIMEOUT" envDefault:"30"`
	OpenAIMaxTokens      int    `env:"OPENAI_MAX_TOKENS" envDefault:"500"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`

	// Credencial unica de cliente del API: id + hash bcrypt del secreto.
	APIClientID         string `env:"API_CLIENT_ID"`
	APIClientSecretHash string `env:"API_CLIENT_SECRET_HASH"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// OpenAIConfigured indica si hay API key usable (el placeholder
// "your-api-key-here" no cuenta).
func (c *Config) OpenAIConfigured() bool {
	key := strings.TrimSpace(c.OpenAIAPIKey)
	return key != "" && key != "your-api-key-here"
}
