package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "config.yaml"

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Server struct {
		Port         int           `yaml:"port" env:"PORT" env-default:"8080"`
		ReadTimeout  time.Duration `yaml:"readTimeout" env:"SERVER_READ_TIMEOUT" env-default:"15s"`
		WriteTimeout time.Duration `yaml:"writeTimeout" env:"SERVER_WRITE_TIMEOUT" env-default:"90s"`
		CORSOrigins  []string      `yaml:"corsOrigins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	} `yaml:"server"`

	Database struct {
		Driver   string `yaml:"driver" env:"DB_DRIVER" env-default:"mysql"`
		Host     string `yaml:"host" env:"DB_HOST"`
		Port     int    `yaml:"port" env:"DB_PORT"`
		User     string `yaml:"user" env:"DB_USER"`
		Password string `yaml:"password" env:"DB_PASSWORD"`
		Name     string `yaml:"name" env:"DB_NAME"`
		// SSLMode is passed to lib/pq: disable, require, verify-ca or verify-full.
		SSLMode string `yaml:"sslMode" env:"DB_SSLMODE" env-default:"require"`
		// Path is the SQLite database file.
		Path string `yaml:"path" env:"DB_PATH" env-default:"feedback.db"`
	} `yaml:"database"`

	Completion struct {
		Provider string `yaml:"provider" env:"COMPLETION_PROVIDER" env-default:"openai"`

		OpenAI struct {
			APIKey    string `yaml:"apiKey" env:"OPENAI_API_KEY"`
			BaseURL   string `yaml:"baseURL" env:"OPENAI_BASE_URL"`
			Model     string `yaml:"model" env:"OPENAI_MODEL" env-default:"gpt-4"`
			MaxTokens int    `yaml:"maxTokens" env:"OPENAI_MAX_TOKENS" env-default:"512"`
			JSONMode  bool   `yaml:"jsonMode" env:"OPENAI_JSON_MODE"`
		} `yaml:"openai"`

		Gemini struct {
			APIKey  string `yaml:"apiKey" env:"GEMINI_API_KEY"`
			Model   string `yaml:"model" env:"GEMINI_MODEL" env-default:"gemini-2.5-flash-lite"`
			BaseURL string `yaml:"baseURL" env:"GEMINI_BASE_URL"`
		} `yaml:"gemini"`
	} `yaml:"completion"`

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	} `yaml:"log"`
}

// Load reads the YAML file at path (a missing file is fine when path is the
// default) and then overlays the process environment. Outside Vercel a local
// .env file is loaded first.
func Load(path string) (*Config, error) {
	if os.Getenv("VERCEL") == "" {
		_ = godotenv.Load()
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
	default:
		return nil, err
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = defaultPort(cfg.Database.Driver)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultPort(driver string) int {
	if driver == DriverPostgres {
		return 5432
	}
	return 3306
}

// Validate checks the credentials required by the selected driver and provider.
func (c *Config) Validate() error {
	var errs []error

	switch c.Database.Driver {
	case DriverMySQL, DriverPostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
			errs = append(errs, fmt.Errorf("database: host, user and name are required for %s", c.Database.Driver))
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			errs = append(errs, errors.New("database: path is required for sqlite3"))
		}
	default:
		errs = append(errs, fmt.Errorf("database: unsupported driver %q", c.Database.Driver))
	}

	switch c.Completion.Provider {
	case ProviderOpenAI:
		if c.Completion.OpenAI.APIKey == "" {
			errs = append(errs, errors.New("completion: OPENAI_API_KEY is required"))
		}
	case ProviderGemini:
		if c.Completion.Gemini.APIKey == "" {
			errs = append(errs, errors.New("completion: GEMINI_API_KEY is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("completion: unsupported provider %q", c.Completion.Provider))
	}

	return errors.Join(errs...)
}

// Helper untuk build DSN MySQL
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port)),
		Path:     "/" + c.Database.Name,
		RawQuery: url.Values{"sslmode": {c.Database.SSLMode}}.Encode(),
	}
	return u.String()
}
