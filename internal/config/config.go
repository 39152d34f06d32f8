// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath      = "config.yml"
	DefaultStorePath = "tasks.csv"

	EnvStorePath = "TASKS_FILE"
	EnvLogLevel  = "TASKS_LOG_LEVEL"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig: пустой Level означает error, а при Development - debug.
type LoggingConfig struct {
	Development bool   `yaml:"development"`
	Level       string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Storage: StorageConfig{Path: DefaultStorePath},
		Logging: LoggingConfig{},
	}
}

// Load читает конфиг из path. Отсутствующий файл не ошибка: берутся значения
// по умолчанию. Переменные окружения перекрывают значения из файла.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
	default:
		defer file.Close()
		decoder := yaml.NewDecoder(file)
		decoder.KnownFields(true)
		if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultStorePath
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStorePath); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}
