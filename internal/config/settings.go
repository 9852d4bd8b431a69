package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultSSHHost     = "::"
	defaultSSHPort     = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	defaultWebHost     = "0.0.0.0"
	defaultWebPort     = "8080"
	defaultDisplayHost = "your-server.com"
	defaultLogLevel    = "info"
)

// Settings are the runtime knobs of the binaries. Gameplay tuning lives in
// internal/loop/config and is not configurable.
type Settings struct {
	SSH struct {
		Host        string `yaml:"host"`
		Port        string `yaml:"port"`
		HostKeyPath string `yaml:"host_key"`
	} `yaml:"ssh"`
	Web struct {
		Host        string `yaml:"host"`
		Port        string `yaml:"port"`
		DisplayHost string `yaml:"display_host"` // Host shown in the ssh command on the landing page
	} `yaml:"web"`
	Seed     int64  `yaml:"seed"` // 0 seeds from the clock
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	var s Settings
	s.SSH.Host = defaultSSHHost
	s.SSH.Port = defaultSSHPort
	s.SSH.HostKeyPath = defaultHostKeyPath
	s.Web.Host = defaultWebHost
	s.Web.Port = defaultWebPort
	s.Web.DisplayHost = defaultDisplayHost
	s.LogLevel = defaultLogLevel
	return s
}

// Load builds Settings from, in increasing priority: defaults, a YAML file at
// path (or $STARFIGHTER_CONFIG when path is empty), and environment
// variables. A .env file in the working directory is loaded into the
// environment first if present; it never overrides variables already set.
func Load(path string) (Settings, error) {
	s := Defaults()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Errorf("load .env: %w", err)
	}

	if path == "" {
		path = os.Getenv("STARFIGHTER_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	s.SSH.Host = GetEnv("SSH_HOST", s.SSH.Host)
	s.SSH.Port = GetEnv("SSH_PORT", s.SSH.Port)
	s.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", s.SSH.HostKeyPath)
	s.Web.Host = GetEnv("WEB_HOST", s.Web.Host)
	s.Web.Port = GetEnv("WEB_PORT", s.Web.Port)
	s.Web.DisplayHost = GetEnv("SSH_DISPLAY_HOST", s.Web.DisplayHost)
	s.LogLevel = GetEnv("STARFIGHTER_LOG_LEVEL", s.LogLevel)
	s.LogFile = GetEnv("STARFIGHTER_LOG_FILE", s.LogFile)

	if v, ok := os.LookupEnv("STARFIGHTER_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("STARFIGHTER_SEED: %w", err)
		}
		s.Seed = seed
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks ports and the log level.
func (s Settings) Validate() error {
	if err := validPort(s.SSH.Port); err != nil {
		return fmt.Errorf("ssh port: %w", err)
	}
	if err := validPort(s.Web.Port); err != nil {
		return fmt.Errorf("web port: %w", err)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, info if it is invalid.
func (s Settings) Level() log.Level {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

func validPort(p string) error {
	n, err := strconv.Atoi(p)
	if err != nil {
		return fmt.Errorf("%q is not a number", p)
	}
	if n < 1 || n > 65535 {
		return fmt.Errorf("%d out of range", n)
	}
	return nil
}
