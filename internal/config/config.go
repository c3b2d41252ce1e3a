package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string           `yaml:"env" env:"ENV" env-default:"local"`
	StoragePath string           `yaml:"storage_path" env:"STORAGE_PATH" env-required:"true"`
	HTTPServer  HTTPServerConfig `yaml:"http_server"`
	Tokens      TokensConfig     `yaml:"tokens"`
	Auth        AuthConfig       `yaml:"auth"`
	Migrations  MigrationsConfig `yaml:"migrations"`
}

type HTTPServerConfig struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// TokensConfig bounds what a single issue request may ask for.
type TokensConfig struct {
	DefaultAlphabet string `yaml:"default_alphabet" env-default:"urlsafe"`
	DefaultLength   int    `yaml:"default_length" env-default:"22"`
	MaxLength       int    `yaml:"max_length" env-default:"1024"`
	MaxCount        int    `yaml:"max_count" env-default:"100"`
	// Unbiased makes every preset sampler use rejection sampling.
	Unbiased bool `yaml:"unbiased" env:"TOKENS_UNBIASED" env-default:"false"`
}

type AuthConfig struct {
	Enabled       bool   `yaml:"enabled" env:"AUTH_ENABLED" env-default:"false"`
	PublicKeyPath string `yaml:"public_key_path" env:"AUTH_PUBLIC_KEY_PATH"`
}

type MigrationsConfig struct {
	MigrationsPath string `yaml:"migrations_path" env-default:"./migrations"`
	MigrationTable string `yaml:"migration_table" env-default:"migrations"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config file path is empty")
	}

	return MustLoadByPath(path)
}

func MustLoadByPath(configPath string) *Config {
	cfg, err := LoadByPath(configPath)
	if err != nil {
		panic(err.Error())
	}

	return cfg
}

// LoadByPath reads the YAML file at configPath and applies env overrides and defaults.
func LoadByPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, &NotFoundError{Path: configPath}
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, &ReadError{Path: configPath, Err: err}
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	return res
}

type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return "config file not found: " + e.Path
}

type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return "failed to read config " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
