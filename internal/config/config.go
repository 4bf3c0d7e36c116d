package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	MigrationsPath string
	JWTSecret      string
	TokenTTL       time.Duration
	DefaultLocale  string
	ReminderCron   string

	// Donation information shown on the donations screen.
	DonationPixKey   string
	DonationBankInfo string
	DonationNote     string
}

// Load carrega a configuração das variáveis de ambiente e a valida.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env é opcional quando as variáveis vêm do ambiente (Docker, CI, etc.).
	}

	cfg := &Config{
		Port:             os.Getenv("PORT"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MigrationsPath:   os.Getenv("MIGRATIONS_PATH"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		DefaultLocale:    os.Getenv("DEFAULT_LOCALE"),
		ReminderCron:     os.Getenv("REMINDER_CRON"),
		DonationPixKey:   os.Getenv("DONATION_PIX_KEY"),
		DonationBankInfo: os.Getenv("DONATION_BANK_INFO"),
		DonationNote:     os.Getenv("DONATION_NOTE"),
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("config: TOKEN_TTL inválido (%q): %w", ttl, err)
		}
		cfg.TokenTTL = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate aplica todas as regras sobre a configuração carregada.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		c.Port = "8080"
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("config: JWT_SECRET é obrigatório e não pode ser vazio")
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Valor padrão útil em ambiente local quando DATABASE_URL não é fornecida.
		c.DatabaseURL = "postgres://localhost:5432/igrejaconnect?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL inválida (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL inválida (%q): scheme ou host ausente", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	if c.TokenTTL <= 0 {
		c.TokenTTL = 24 * time.Hour
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "pt-BR"
	}

	if strings.TrimSpace(c.ReminderCron) == "" {
		// Todos os dias às 9h, horário do servidor.
		c.ReminderCron = "0 9 * * *"
	}

	return nil
}
