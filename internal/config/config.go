package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Pg            Pg       `yaml:"pg"`
	ImageKit      ImageKit `yaml:"imagekit"`
	MaxBundleSize int64    `yaml:"max_bundle_size"` // bytes, multipart upload cap
	LogLevel      string   `yaml:"log_level"`
	LogJSON       bool     `yaml:"log_json"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

// ImageKit holds the non-secret half of the media store credentials.
// The public key and URL endpoint are handed to browser clients via the
// upload auth endpoint, so they live in the public config.
type ImageKit struct {
	PublicKey   string `yaml:"public_key"`
	UrlEndpoint string `yaml:"url_endpoint"`
}

type Private struct {
	PgPassword         string `yaml:"pg_password"`
	ImageKitPrivateKey string `yaml:"imagekit_private_key"`
}

func (c *Config) PgPassword() string {
	return c.private.PgPassword
}

func (c *Config) ImageKitPrivateKey() string {
	return c.private.ImageKitPrivateKey
}

// NewForTesting builds a config without reading files.
func NewForTesting(public Public, private Private) *Config {
	return &Config{public, private}
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder.
// Secrets may be overridden (or supplied entirely) via environment
// variables; the process refuses to start without media store
// credentials since every write endpoint would fail anyway.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		mustLoadPath(privatePath, &private)
	}

	if v := os.Getenv("PG_PASSWORD"); v != "" {
		private.PgPassword = v
	}
	if v := os.Getenv("IMAGEKIT_PRIVATE_KEY"); v != "" {
		private.ImageKitPrivateKey = v
	}
	if v := os.Getenv("IMAGEKIT_PUBLIC_KEY"); v != "" {
		public.ImageKit.PublicKey = v
	}
	if v := os.Getenv("IMAGEKIT_URL_ENDPOINT"); v != "" {
		public.ImageKit.UrlEndpoint = v
	}

	if public.MaxBundleSize == 0 {
		public.MaxBundleSize = 200 << 20
	}

	cfg := &Config{public, private}
	if cfg.private.ImageKitPrivateKey == "" || cfg.Public.ImageKit.PublicKey == "" || cfg.Public.ImageKit.UrlEndpoint == "" {
		panic("missing ImageKit credentials: set imagekit config or IMAGEKIT_* env vars")
	}
	return cfg
}
