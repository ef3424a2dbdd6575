package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port     int    `yaml:"port"`
	GinMode  string `yaml:"gin_mode"`
	LogLevel string `yaml:"log_level"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CodeConfig struct {
	Length int    `yaml:"length"`
	TTL    string `yaml:"ttl"`
}

type SMTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Code     CodeConfig     `yaml:"code"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Twilio   TwilioConfig   `yaml:"twilio"`
}

type Config struct {
	Port          string
	GinMode       string
	LogLevel      string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CodeLength    int
	CodeTTL       time.Duration
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
	SMTPFrom      string
	TwilioSID     string
	TwilioToken   string
	TwilioFrom    string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the configuration file and resolves it into a runtime Config.
func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_PATH", "config/config.yml"))
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	codeTTL, err := time.ParseDuration(configFile.Code.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid code TTL: %w", err)
	}

	return &Config{
		Port:          fmt.Sprintf("%d", configFile.App.Port),
		GinMode:       configFile.App.GinMode,
		LogLevel:      configFile.App.LogLevel,
		DSN:           configFile.Database.DSN,
		RedisAddr:     configFile.Redis.Addr,
		RedisPassword: configFile.Redis.Password,
		RedisDB:       configFile.Redis.DB,
		CodeLength:    configFile.Code.Length,
		CodeTTL:       codeTTL,
		SMTPHost:      configFile.SMTP.Host,
		SMTPPort:      configFile.SMTP.Port,
		SMTPUser:      configFile.SMTP.User,
		SMTPPass:      configFile.SMTP.Pass,
		SMTPFrom:      configFile.SMTP.From,
		TwilioSID:     configFile.Twilio.AccountSID,
		TwilioToken:   configFile.Twilio.AuthToken,
		TwilioFrom:    configFile.Twilio.FromNumber,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
