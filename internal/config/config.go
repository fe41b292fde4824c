package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"./storage/inquiries.db"`
	HTTPServer  `yaml:"http_server"`
	Content     `yaml:"content"`
	Inquiry     `yaml:"inquiry"`
	Catalog     `yaml:"catalog"`
	Admin       `yaml:"admin"`
}

type HTTPServer struct {
	Address         string        `yaml:"address" env-default:"localhost:8080"`
	Timeout         time.Duration `yaml:"timeout" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"10s"`
}

// Content describes the press-release backend the pages are rendered from.
type Content struct {
	APIBaseURL    string        `yaml:"api_base_url" env:"CONTENT_API_BASE_URL" env-default:"https://rest.dev.bigvalue.ai/home/press-release"`
	ClientTimeout time.Duration `yaml:"client_timeout" env-default:"10s"`
	Timezone      string        `yaml:"timezone" env:"CONTENT_TIMEZONE" env-default:"Local"`
	PageSize      int           `yaml:"page_size" env-default:"10"`
}

type Inquiry struct {
	Endpoint string `yaml:"endpoint" env:"INQUIRY_ENDPOINT" env-default:"https://rest.dev.bigvalue.ai/home/inquire"`
}

type Catalog struct {
	Path string `yaml:"path" env:"CATALOG_PATH" env-default:"./data-products/data-products-data.json"`
}

type Admin struct {
	UserName     string        `yaml:"user_name" env:"ADMIN_USER_NAME" env-default:"admin"`
	PasswordHash string        `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
	Secret       string        `yaml:"secret" env:"ADMIN_SECRET" env-required:"true"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"1h"`
}

func MustLoad() *Config {
	path := fetchConfigPath()
	if path == "" {
		panic("config path is empty")
	}

	if _, err := os.Stat(path); err != nil {
		log.Panicf("error opening config file: %s", err)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		log.Panicf("error reading config file: %s", err)
	}

	return &cfg
}

// Location resolves the configured time zone the dates are rendered in.
func (c Content) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

func fetchConfigPath() string {
	var path string
	flag.StringVar(&path, "config", "", "sets path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
