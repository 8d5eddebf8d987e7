package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	Port        string `env:"PORT"`
	StaticDir   string `env:"STATIC_DIR"`

	Session Session
	Admin   Admin
	Email   Email
	Uploads Uploads
}

type Session struct {
	Secret        string        `env:"SESSION_SECRET"`
	MaxAge        time.Duration `env:"SESSION_MAX_AGE"`
	SecureCookie  bool          `env:"SESSION_SECURE_COOKIE"`
	PruneInterval time.Duration `env:"SESSION_PRUNE_INTERVAL"`
}

// Admin: учётка, которую создаёт seed, если её ещё нет.
type Admin struct {
	Username string `env:"ADMIN_USERNAME"`
	Password string `env:"ADMIN_PASSWORD"`
}

// Email holds the SMTP relay used for contact notifications. Empty
// credentials disable sending.
type Email struct {
	Host     string `env:"EMAIL_HOST"`
	Port     int    `env:"EMAIL_PORT"`
	User     string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASS"`
	To       string `env:"EMAIL_TO"`
}

func (e Email) Enabled() bool {
	return e.User != "" && e.Password != ""
}

// Uploads configures resume storage: S3 when Bucket is set, else Dir on disk.
type Uploads struct {
	Dir         string `env:"UPLOAD_DIR"`
	S3Bucket    string `env:"S3_BUCKET"`
	S3Region    string `env:"S3_REGION"`
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
}

var defaults = Config{
	Port: "5000",
	Session: Session{
		MaxAge:        24 * time.Hour,
		PruneInterval: 15 * time.Minute,
	},
	Email: Email{
		Host: "smtp.gmail.com",
		Port: 587,
	},
	Uploads: Uploads{
		Dir:      "./uploads",
		S3Region: "us-east-1",
	},
}

var (
	ErrNoDatabaseURL   = errors.New("DATABASE_URL is not set")
	ErrNoSessionSecret = errors.New("SESSION_SECRET is not set")
)

// Load reads .env (if present), the environment and command-line flags.
// Flags win over the environment; defaults fill whatever is left.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	envCfg := &Config{}
	if err := env.Parse(envCfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	return build(envCfg, flagCfg)
}

func build(sources ...*Config) (*Config, error) {
	cfg := new(Config)
	for _, src := range sources {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	if err := mergo.Merge(cfg, defaults); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	var errs []error
	if cfg.DatabaseURL == "" {
		errs = append(errs, ErrNoDatabaseURL)
	}
	if cfg.Session.Secret == "" {
		errs = append(errs, ErrNoSessionSecret)
	}
	return errors.Join(errs...)
}
