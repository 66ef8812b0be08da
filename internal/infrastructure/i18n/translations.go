package i18n

import (
	"embed"
	"io/fs"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"wookiee/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

// Translator serves the output.T port used by pkg/discord and the CLI.
var _ output.T = (*Translator)(nil)

// Translator resolves the bot and CLI messages (error reasons, command
// descriptions, usage text) from the embedded English and French catalogs.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator loads every embedded active.<lang>.toml catalog. defaultLocale
// (the LOCALE setting) answers when a user's Discord locale has no catalog;
// an unparsable value falls back to English.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "active.*.toml")
	if err != nil {
		log.Printf("i18n: list message files: %v", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// T renders key for a Discord or CLI locale ("fr", "en-US"). Unknown
// locales use the default catalog; an unknown key is returned as is so a
// missing message shows up in replies instead of an empty string.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}

// Localizations renders key in every loaded language, keyed by BCP 47 tag.
// Languages missing the message are omitted.
func (t *Translator) Localizations(key string) map[string]string {
	out := make(map[string]string)
	for _, tag := range t.bundle.LanguageTags() {
		localizer := i18n.NewLocalizer(t.bundle, tag.String())
		msg, resolved, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: key})
		if err != nil || resolved != tag {
			continue
		}
		out[tag.String()] = msg
	}
	return out
}
