package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type SessionsConfig struct {
	Store         string `yaml:"store"` // "memory" (default) or "redis"
	TTL           string `yaml:"ttl"`   // redis store only; empty means no expiry
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

type OTPConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type SMTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Sessions SessionsConfig `yaml:"sessions"`
	OTP      OTPConfig      `yaml:"otp"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port            string
	GinMode         string
	DSN             string
	SessionStore    string
	SessionTTL      time.Duration
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	OTPTTL          time.Duration
	OTPLength       int
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string
	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")
	configFile, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	otpTTL := 10 * time.Minute
	if configFile.OTP.TTL != "" {
		otpTTL, err = time.ParseDuration(configFile.OTP.TTL)
		if err != nil {
			return nil, fmt.Errorf("invalid OTP TTL: %w", err)
		}
	}

	var sessionTTL time.Duration
	if configFile.Sessions.TTL != "" {
		sessionTTL, err = time.ParseDuration(configFile.Sessions.TTL)
		if err != nil {
			return nil, fmt.Errorf("invalid session TTL: %w", err)
		}
	}

	store := configFile.Sessions.Store
	if store == "" {
		store = "memory"
	}
	if store != "memory" && store != "redis" {
		return nil, fmt.Errorf("unknown session store %q", store)
	}

	otpLength := configFile.OTP.Length
	if otpLength == 0 {
		otpLength = 6
	}

	smtpPort := configFile.SMTP.Port
	if p := os.Getenv("SMTP_PORT"); p != "" {
		smtpPort, err = strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
	}

	port := "4000"
	if configFile.App.Port != 0 {
		port = strconv.Itoa(configFile.App.Port)
	}

	return &Config{
		Port:            env("PORT", port),
		GinMode:         configFile.App.GinMode,
		DSN:             env("DATABASE_DSN", configFile.Database.DSN),
		SessionStore:    env("SESSION_STORE", store),
		SessionTTL:      sessionTTL,
		RedisAddr:       env("REDIS_ADDR", configFile.Sessions.RedisAddr),
		RedisPassword:   env("REDIS_PASSWORD", configFile.Sessions.RedisPassword),
		RedisDB:         configFile.Sessions.RedisDB,
		OTPTTL:          otpTTL,
		OTPLength:       otpLength,
		SMTPHost:        env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:        smtpPort,
		SMTPUser:        env("SMTP_USER", configFile.SMTP.User),
		SMTPPass:        env("SMTP_PASS", configFile.SMTP.Pass),
		SMTPFrom:        env("SMTP_FROM", configFile.SMTP.From),
		CasbinModelPath: configFile.Casbin.ModelPath,
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
