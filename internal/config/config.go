package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local"`
	Database   `yaml:"database"`
	HTTPServer `yaml:"http_server"`
}

type Database struct {
	Driver     string `yaml:"driver" env:"DB_DRIVER" env-default:"sqlite"`
	Path       string `yaml:"path" env:"DB_PATH" env-default:"boardgames.db"`
	Host       string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port       int    `yaml:"port" env:"DB_PORT" env-default:"3306"`
	UsernameDB string `yaml:"username-db" env:"DB_USERNAME" env-default:"root"`
	Password   string `yaml:"password" env:"DB_PASSWORD"`
	DBName     string `yaml:"dbname" env:"DB_NAME" env-default:"boardgames"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// MustLoad parses the command line flags and loads the configuration.
// The YAML file is optional: without -config or CONFIG_PATH only the
// environment and the defaults are used.
func MustLoad() *Config {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to config yaml file")
	flag.Parse()

	cfg, err := Load(*configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, configPath, err)
	}

	return &cfg, nil
}

// GetDSN returns the data source name for the configured driver. A relative
// sqlite path is resolved against the directory of the running executable.
func (cfg *Database) GetDSN() string {
	switch cfg.Driver {
	case DriverMySQL:
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?parseTime=true",
			cfg.UsernameDB,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
		)
	default:
		return cfg.SQLitePath() + "?_busy_timeout=5000&_journal_mode=WAL"
	}
}

func (cfg *Database) SQLitePath() string {
	if cfg.Path == "" || filepath.IsAbs(cfg.Path) {
		return cfg.Path
	}

	exe, err := os.Executable()
	if err != nil {
		return cfg.Path
	}

	return filepath.Join(filepath.Dir(exe), cfg.Path)
}
