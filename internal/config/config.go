package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	defaultLocale        = "en"
	defaultMaxInputRunes = 1000
	// Discord rejects message contents longer than 2000 characters.
	discordMaxMessageRunes = 2000
)

type Config struct {
	Token          string
	GuildID        string
	DatabaseURL    string
	Locale         string
	MaxInputRunes  int
	MaxResultRunes int
}

// Load charge la configuration du bot depuis les variables d'environnement et la valide.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		Token:          os.Getenv("TOKEN"),
		GuildID:        os.Getenv("GUILD_ID"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Locale:         os.Getenv("LOCALE"),
		MaxInputRunes:  defaultMaxInputRunes,
		MaxResultRunes: discordMaxMessageRunes,
	}

	if raw := strings.TrimSpace(os.Getenv("MAX_INPUT_RUNES")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config: MAX_INPUT_RUNES invalide (%q): %w", raw, err)
		}
		cfg.MaxInputRunes = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadCLI charge la configuration de la ligne de commande: seule LOCALE est lue.
func LoadCLI() (*Config, error) {
	loadDotEnv()

	cfg := &Config{Locale: os.Getenv("LOCALE")}
	if err := cfg.validateLocale(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	}
}

// HistoryEnabled reports whether translations are persisted.
func (c *Config) HistoryEnabled() bool {
	return c.DatabaseURL != ""
}

// validate applique toutes les règles sur la configuration du bot.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN est requis et ne peut pas être vide")
	}

	if c.GuildID != "" {
		for _, r := range c.GuildID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
			}
		}
	}

	if c.MaxInputRunes < 0 {
		return fmt.Errorf("config: MAX_INPUT_RUNES ne peut pas être négatif (%d)", c.MaxInputRunes)
	}

	if err := c.validateLocale(); err != nil {
		return err
	}

	c.DatabaseURL = strings.TrimSpace(c.DatabaseURL)
	if c.DatabaseURL == "" {
		// Sans DATABASE_URL, l'historique des traductions est désactivé.
		return nil
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	return nil
}

// validateLocale applique la valeur par défaut de LOCALE et vérifie qu'elle est une étiquette BCP 47.
func (c *Config) validateLocale() error {
	c.Locale = strings.TrimSpace(c.Locale)
	if c.Locale == "" {
		c.Locale = defaultLocale
	}
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("config: LOCALE invalide (%q): %w", c.Locale, err)
	}
	return nil
}
