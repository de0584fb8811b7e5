package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	IsDebug bool `yaml:"is_debug" env:"ECONSTRUCT_DEBUG" env-default:"false"`
	Listen  struct {
		BindIP string `yaml:"bind_ip" env:"ECONSTRUCT_BIND_IP" env-default:"0.0.0.0"`
		Port   string `yaml:"port" env:"ECONSTRUCT_PORT" env-default:"8080"`
	} `yaml:"listen"`
	Frontend struct {
		Dir string `yaml:"dir" env:"ECONSTRUCT_FRONTEND_DIR" env-default:"frontend/build"`
	} `yaml:"frontend"`
	Geocode struct {
		BaseURL    string `yaml:"base_url" env:"ECONSTRUCT_GEOCODE_URL" env-default:"https://nominatim.openstreetmap.org"`
		UserAgent  string `yaml:"user_agent" env-default:"econstruct/1.0"`
		TimeoutSec int    `yaml:"timeout_sec" env-default:"10"`
	} `yaml:"geocode"`
}

// Load reads the YAML config file when it exists, falling back to environment
// variables and defaults otherwise.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return cfg, nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Listen.BindIP, c.Listen.Port)
}

// GeocodeTimeout returns the geocode client timeout as a duration.
func (c *Config) GeocodeTimeout() time.Duration {
	return time.Duration(c.Geocode.TimeoutSec) * time.Second
}
