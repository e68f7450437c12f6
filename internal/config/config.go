package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	BackendFile     = "file"
	BackendSupabase = "supabase"
)

type Config struct {
	TelegramToken string `envconfig:"BOT_TOKEN"`
	Port          string `envconfig:"PORT" default:"3000" validate:"required"`
	// WebAppURL адрес Mini App, Telegram требует HTTPS
	WebAppURL string `envconfig:"WEB_APP_URL" default:"https://smokelab.store/web/" validate:"required,url"`
	// ServerURL префикс для относительных путей картинок в data.js
	ServerURL string `envconfig:"SERVER_URL" default:"https://smokelab.store" validate:"required,url"`
	DataDir   string `envconfig:"DATA_DIR" default:"." validate:"required"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	CatalogBackend string `envconfig:"CATALOG_BACKEND" default:"file" validate:"oneof=file supabase"`
	SupabaseURL    string `envconfig:"SUPABASE_URL" validate:"required_if=CatalogBackend supabase"`
	SupabaseKey    string `envconfig:"SUPABASE_KEY" validate:"required_if=CatalogBackend supabase"`

	CloudinaryURL      string `envconfig:"CLOUDINARY_URL"`
	UploadMaxDimension int    `envconfig:"UPLOAD_MAX_DIMENSION" default:"0" validate:"gte=0"`
	UploadMaxBytes     int64  `envconfig:"UPLOAD_MAX_BYTES" default:"33554432" validate:"gt=0"`

	AdminUser string `envconfig:"ADMIN_USER"`
	AdminPass string `envconfig:"ADMIN_PASS" validate:"required_with=AdminUser"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig читает .env (если он есть) и переменные окружения
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Пути внутри DATA_DIR

func (c *Config) ProductsFile() string   { return filepath.Join(c.DataDir, "products.json") }
func (c *Config) CategoriesFile() string { return filepath.Join(c.DataDir, "categories.json") }
func (c *Config) UploadsDir() string     { return filepath.Join(c.DataDir, "uploads") }
func (c *Config) WebDir() string         { return filepath.Join(c.DataDir, "web") }
func (c *Config) DataJSFile() string     { return filepath.Join(c.WebDir(), "data.js") }
func (c *Config) AdminDir() string       { return filepath.Join(c.DataDir, "public-admin") }

// Addr адрес HTTP-сервера для http.Server
func (c *Config) Addr() string {
	if len(c.Port) > 0 && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}
