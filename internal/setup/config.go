package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "configs/service.yaml"

type Config struct {
	AWSRegion        string `yaml:"aws_region"`
	Port             string `yaml:"port"`
	DynamoDBEndpoint string `yaml:"dynamodb_endpoint"`
	LogLevel         string `yaml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		AWSRegion: "us-east-1",
		Port:      "8000",
		LogLevel:  "info",
	}
}

// LoadConfig resolves defaults, then the optional YAML file, then the
// environment. The result is read once at startup and never changed.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	path, explicit := os.LookupEnv("SERVICE_CONFIG_PATH")
	if !explicit || path == "" {
		path = defaultConfigPath
		explicit = false
	}

	if err := loadFile(cfg, path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg.AWSRegion = getEnv("AWS_REGION", cfg.AWSRegion)
	cfg.Port = getEnv("API_PORT", cfg.Port)
	cfg.DynamoDBEndpoint = getEnv("DYNAMODB_ENDPOINT", cfg.DynamoDBEndpoint)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
