package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const CONFIG_PATH = "etc/app.yml"

// Environment names, matched against the ENV variable.
const (
	ENV_PROD = "prod"
	ENV_DEV  = "dev"
)

// Config is the application configuration: the yaml file sets the shape,
// environment variables override individual values.
type Config struct {
	Env            string `yaml:"env" validate:"required,oneof=prod dev"`
	HTTPPort       int    `yaml:"http_port" validate:"required"`
	CampusBaseURL  string `yaml:"campus_base_url" validate:"required,url"`
	RedisAddr      string `yaml:"redis_addr" validate:"required"`
	RedisPassword  string `yaml:"redis_password"`
	RedisDB        int    `yaml:"redis_db"`
	UseMemoryStore bool   `yaml:"use_memory_store"`
}

func defaults() Config {
	return Config{
		Env:           ENV_DEV,
		HTTPPort:      8080,
		CampusBaseURL: "http://localhost:9000",
		RedisAddr:     "localhost:6379",
	}
}

// LoadConfig reads etc/app.yml (falling back to built-in dev defaults when
// the file is absent), applies .env / environment overrides, and validates
// the result.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	path := filepath.Join(BaseDir(), CONFIG_PATH)
	data, err := os.ReadFile(path)
	if err == nil {
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// A missing .env just means everything comes from the real environment.
	_ = godotenv.Load()

	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("CAMPUS_API_BASE_URL"); v != "" {
		cfg.CampusBaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", v, err)
		}
		cfg.HTTPPort = port
	}
	if v := os.Getenv("USE_MEMORY_STORE"); v != "" {
		cfg.UseMemoryStore, _ = strconv.ParseBool(v)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}
