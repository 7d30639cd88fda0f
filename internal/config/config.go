package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL   = "https://api.textbee.dev/api/v1"
	DefaultPort      = "3001"
	DefaultStaticDir = "."
)

// Config guarda tudo que o relay lê na inicialização. Não muda depois do Load.
type Config struct {
	APIKey   string `yaml:"-"`
	DeviceID string `yaml:"-"`

	BaseURL        string        `yaml:"base_url"`
	Timeout        time.Duration `yaml:"timeout"`
	Port           string        `yaml:"port"`
	StaticDir      string        `yaml:"static_dir"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	LogFile        string        `yaml:"log_file"`
}

// HasCredentials indica se os dois segredos do TextBee estão presentes.
func (c *Config) HasCredentials() bool {
	return c.APIKey != "" && c.DeviceID != ""
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load lê o .env (se existir), depois o YAML opcional de CONFIG_FILE e por
// fim as variáveis de ambiente. A última fonte vence.
func Load() (*Config, error) {
	// .env é opcional
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler variáveis de ambiente: %w", err)
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		Port:           DefaultPort,
		StaticDir:      DefaultStaticDir,
		AllowedOrigins: []string{"*"},
	}
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("erro ao parsear %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.APIKey = os.Getenv("TEXTBEE_API_KEY")
	cfg.DeviceID = os.Getenv("TEXTBEE_DEVICE_ID")

	if v := os.Getenv("TEXTBEE_BASE_URL"); v != "" {
		cfg.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("TEXTBEE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TEXTBEE_TIMEOUT inválido: %w", err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}

	return nil
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
