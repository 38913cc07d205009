package setup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SERVICE_CONFIG_PATH", "AWS_REGION", "API_PORT", "DYNAMODB_ENDPOINT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.AWSRegion != "us-east-1" {
		t.Errorf("Expected default region us-east-1, got %s", cfg.AWSRegion)
	}
	if cfg.Port != "8000" {
		t.Errorf("Expected default port 8000, got %s", cfg.Port)
	}
	if cfg.DynamoDBEndpoint != "" {
		t.Errorf("Expected no DynamoDB endpoint override, got %s", cfg.DynamoDBEndpoint)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "service.yaml")
	content := `aws_region: eu-west-1
port: "9090"
dynamodb_endpoint: http://localhost:8001
log_level: debug
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	t.Setenv("SERVICE_CONFIG_PATH", configPath)
	t.Setenv("AWS_REGION", "ap-south-1")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.AWSRegion != "ap-south-1" {
		t.Errorf("Expected AWS_REGION to win, got %s", cfg.AWSRegion)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port from file 9090, got %s", cfg.Port)
	}
	if cfg.DynamoDBEndpoint != "http://localhost:8001" {
		t.Errorf("Expected endpoint from file, got %s", cfg.DynamoDBEndpoint)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.LogLevel)
	}
}

func TestLoadConfig_ExplicitFileNotFound(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVICE_CONFIG_PATH", "/nonexistent/path/service.yaml")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(configPath, []byte("aws_region: [unterminated\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("SERVICE_CONFIG_PATH", configPath)

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}
