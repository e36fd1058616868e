package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultContactEmailTo   = "contact@example.com"
	DefaultContactEmailFrom = "onboarding@resend.dev"

	EmailProviderResend = "resend"
	EmailProviderSMTP   = "smtp"
)

type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	GinMode        string   `env:"GIN_MODE" envDefault:"debug"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	FrontendURL    string   `env:"FRONTEND_URL" envDefault:"http://localhost:4321"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Email delivery
	EmailProvider    string `env:"EMAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey     string `env:"RESEND_API_KEY"`
	ContactEmailTo   string `env:"PUBLIC_CONTACT_EMAIL" envDefault:"contact@example.com"`
	ContactEmailFrom string `env:"RESEND_FROM_EMAIL" envDefault:"onboarding@resend.dev"`

	// SMTP relay, only read when EMAIL_PROVIDER=smtp
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`

	Site SiteConfig `envPrefix:"SITE_"`
}

// SiteConfig carries the branding strings shared by the footer and outgoing emails.
type SiteConfig struct {
	CompanyName string `env:"COMPANY_NAME" envDefault:"Example Co."`
	Tagline     string `env:"TAGLINE" envDefault:"Software that grows with your business."`
	TwitterURL  string `env:"TWITTER_URL" envDefault:"https://twitter.com/example"`
	LinkedInURL string `env:"LINKEDIN_URL" envDefault:"https://www.linkedin.com/company/example"`
	GitHubURL   string `env:"GITHUB_URL" envDefault:"https://github.com/example"`
}

func LoadConfig() (*Config, error) {
	// .env is a local convenience; deployments set real environment variables
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// An empty value falls back the same way an unset one does
	if strings.TrimSpace(cfg.ContactEmailTo) == "" {
		cfg.ContactEmailTo = DefaultContactEmailTo
	}
	if strings.TrimSpace(cfg.ContactEmailFrom) == "" {
		cfg.ContactEmailFrom = DefaultContactEmailFrom
	}
	cfg.EmailProvider = strings.ToLower(strings.TrimSpace(cfg.EmailProvider))
	cfg.FrontendURL = strings.TrimRight(cfg.FrontendURL, "/")

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("unsupported GIN_MODE %q", cfg.GinMode)
	}

	switch cfg.EmailProvider {
	case EmailProviderResend:
		if cfg.ResendAPIKey == "" {
			log.Println("WARNING: RESEND_API_KEY not configured. Contact form emails will not be sent.")
		}
	case EmailProviderSMTP:
		if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
			log.Println("WARNING: SMTP credentials incomplete. Contact form emails will not be sent.")
		}
	default:
		return nil, fmt.Errorf("unsupported EMAIL_PROVIDER %q", cfg.EmailProvider)
	}

	return cfg, nil
}

// Origins returns the CORS allow-list: the frontend URL plus any extra origins.
func (c *Config) Origins() []string {
	origins := make([]string, 0, len(c.AllowedOrigins)+1)
	if c.FrontendURL != "" {
		origins = append(origins, c.FrontendURL)
	}
	for _, o := range c.AllowedOrigins {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
