package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/CIDgravity/snakelet"
)

// ErrConfigFileNotFound is returned by Load when no config.toml could be located
var ErrConfigFileNotFound = errors.New("config file not found")

// config structure
type Config struct {
	API    APIConfig    `mapstructure:"API"`
	Github GithubConfig `mapstructure:"GITHUB"`
	Logs   LogsConfig   `mapstructure:"LOGS"`
}

type APIConfig struct {
	ListenPort        string  `mapstructure:"ListenPort"`
	RequestsPerSecond float64 `mapstructure:"RequestsPerSecond"` // inbound requests accepted by our own API
	RequestsBurst     int     `mapstructure:"RequestsBurst"`
}

type GithubConfig struct {
	RequestTimeoutSeconds int `mapstructure:"RequestTimeoutSeconds"` // 0 disables the timeout
}

type LogsConfig struct {
	Level            string `mapstructure:"Level"` // error | warn | info | debug - case insensitive
	OutputLogsAsJSON bool   `mapstructure:"OutputLogsAsJSON"`
}

// RequestTimeout returns the timeout applied around a single github request
func (c GithubConfig) RequestTimeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 0
	}

	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// Load will read config/config.toml (next to the binary first, then from the working directory)
// on top of the default values
func Load() (*Config, error) {
	dir, err := filepath.Abs(filepath.Dir(os.Args[0]))

	if err != nil {
		return nil, err
	}

	configFilePath, err := locate(dir)
	if err != nil {
		return nil, err
	}

	// load default and config file content
	cfg := GetDefault()
	_, err = snakelet.InitAndLoad(cfg, configFilePath)

	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func locate(binaryDir string) (string, error) {
	candidates := []string{
		filepath.Join(binaryDir, "config", "config.toml"),
		filepath.Join("config", "config.toml"),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", ErrConfigFileNotFound
}

// GetDefault
func GetDefault() *Config {
	return &Config{
		API: APIConfig{
			ListenPort:        "5000",
			RequestsPerSecond: 5,
			RequestsBurst:     10,
		},
		Github: GithubConfig{
			RequestTimeoutSeconds: 10,
		},
		Logs: LogsConfig{
			Level:            "debug",
			OutputLogsAsJSON: false,
		},
	}
}
