package i18n

import (
	"strings"
	"testing"
)

func TestTranslator_T(t *testing.T) {
	tr := NewTranslator("en")

	tests := []struct {
		name   string
		locale string
		key    string
		data   map[string]any
		want   string
	}{
		{name: "english", locale: "en", key: "no_history", want: "You have not translated anything yet."},
		{name: "french", locale: "fr", key: "no_history", want: "Tu n'as encore rien traduit."},
		{name: "regional french", locale: "fr-FR", key: "unknown_error", want: "Une erreur est survenue."},
		{name: "unknown locale falls back", locale: "de", key: "unknown_error", want: "Something went wrong."},
		{name: "empty locale falls back", locale: "", key: "unknown_error", want: "Something went wrong."},
		{name: "template", locale: "en", key: "text_too_long", data: map[string]any{"Max": 10}, want: "That text is too long, keep it under 10 characters."},
		{name: "unknown key", locale: "en", key: "nope", want: "nope"},
		{name: "empty key", locale: "en", key: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.T(tt.locale, tt.key, tt.data); got != tt.want {
				t.Errorf("T(%q, %q) = %q, want %q", tt.locale, tt.key, got, tt.want)
			}
		})
	}
}

func TestNewTranslator_InvalidDefaultLocale(t *testing.T) {
	tr := NewTranslator("not a locale!")
	if got := tr.T("", "unknown_error", nil); got != "Something went wrong." {
		t.Fatalf("T() = %q, want English fallback", got)
	}
}

func TestTranslator_Localizations(t *testing.T) {
	got := NewTranslator("en").Localizations("command_message_translate")
	if got["en"] != "Translate to Shyriiwook" {
		t.Errorf("en = %q", got["en"])
	}
	if got["fr"] != "Traduire en Shyriiwook" {
		t.Errorf("fr = %q", got["fr"])
	}
	if len(NewTranslator("en").Localizations("nope")) != 0 {
		t.Errorf("expected no localizations for an unknown key")
	}
}

func TestMessageFilesShareKeys(t *testing.T) {
	en, err := localeFS.ReadFile("active.en.toml")
	if err != nil {
		t.Fatalf("read en: %v", err)
	}
	fr, err := localeFS.ReadFile("active.fr.toml")
	if err != nil {
		t.Fatalf("read fr: %v", err)
	}
	if keys(string(en)) != keys(string(fr)) {
		t.Fatalf("message keys differ:\nen: %s\nfr: %s", keys(string(en)), keys(string(fr)))
	}
}

func keys(file string) string {
	var out []string
	for _, line := range strings.Split(file, "\n") {
		if strings.HasPrefix(line, "[") {
			out = append(out, line)
		}
	}
	return strings.Join(out, ",")
}
