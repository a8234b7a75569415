package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Pg          Pg            `yaml:"pg"`
	HttpPort    int           `yaml:"http_port"`
	JwtTTL      time.Duration `yaml:"jwt_ttl"`
	LogLevel    string        `yaml:"log_level"`
	LogJSON     bool          `yaml:"log_json"`
	CorsOrigins []string      `yaml:"cors_origins"`
}

type Pg struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	User   string `yaml:"user"`
	Dbname string `yaml:"dbname"`
}

type Private struct {
	JwtKey     string `yaml:"jwt_key"`
	PgPassword string `yaml:"pg_password"`
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func (s *Config) PgPassword() string {
	return s.private.PgPassword
}

// NewForTesting builds a config without touching the filesystem.
func NewForTesting(public Public, private Private) *Config {
	return &Config{public, private}
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
