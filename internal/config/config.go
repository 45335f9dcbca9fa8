package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Version int      `mapstructure:"version"`
	S3      S3Config `mapstructure:"s3"`
}

type S3Config struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Default is the config used when no file is present: the S3 client falls
// back to the ambient AWS credential chain.
func Default() *Config {
	return &Config{Version: 1}
}

// SearchPaths lists where Load looks for a config file when no explicit
// path is given, in order.
func SearchPaths() []string {
	paths := []string{"sweepkit.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".sweepkit.yaml"))
	}
	return append(paths, "/etc/sweepkit/sweepkit.yaml")
}

// Load reads the config file at path. An empty path means "search the
// default locations"; if none exists the default config is returned.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return Default(), nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	expandEnv(&cfg)

	return &cfg, nil
}

func expandEnv(cfg *Config) {
	cfg.S3.Region = os.ExpandEnv(cfg.S3.Region)
	cfg.S3.Endpoint = os.ExpandEnv(cfg.S3.Endpoint)
	cfg.S3.AccessKey = os.ExpandEnv(cfg.S3.AccessKey)
	cfg.S3.SecretKey = os.ExpandEnv(cfg.S3.SecretKey)
}
