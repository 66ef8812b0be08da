package discord

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"wookiee/internal/domain"
)

type fakeT struct{}

func (fakeT) T(locale, key string, data map[string]any) string {
	if len(data) == 0 {
		return locale + ":" + key
	}
	return fmt.Sprintf("%s:%s:%v", locale, key, data["Max"])
}

func TestDomainErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		data map[string]any
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "domain", err: domain.ErrEmptyText, want: "fr:empty_text"},
		{name: "wrapped domain with data", err: fmt.Errorf("x: %w", domain.ErrTextTooLong), data: map[string]any{"Max": 5}, want: "fr:text_too_long:5"},
		{name: "other", err: errors.New("boom"), want: "fr:unknown_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainErrorMessage(fakeT{}, "fr", tt.err, tt.data); got != tt.want {
				t.Errorf("DomainErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRelativeTimestamp(t *testing.T) {
	if got := FormatRelativeTimestamp(time.Time{}); got != "-" {
		t.Errorf("zero time = %q, want -", got)
	}
	ts := time.Unix(1760000000, 0)
	if got := FormatRelativeTimestamp(ts); got != "<t:1760000000:R>" {
		t.Errorf("FormatRelativeTimestamp() = %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "abc", max: 3, want: "abc"},
		{in: "abcd", max: 3, want: "ab…"},
		{in: "éèêë", max: 2, want: "é…"},
		{in: "abc", max: 0, want: ""},
	}
	for _, tt := range tests {
		if got := truncateRunes(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestBuildTranslationEmbed(t *testing.T) {
	long := strings.Repeat("a", 2000)
	result := strings.Repeat("ra", 1000)
	e := BuildTranslationEmbed("Original", long, "Shyriiwook", result, "Chewie", "")
	if len(e.Fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(e.Fields))
	}
	if n := utf8.RuneCountInString(e.Fields[0].Value); n != embedFieldMaxRunes {
		t.Errorf("source field has %d runes, want %d", n, embedFieldMaxRunes)
	}
	if e.Description != result {
		t.Errorf("description has %d runes, want the full %d-rune result", utf8.RuneCountInString(e.Description), len(result))
	}
	if e.Title != "Shyriiwook" || e.Author.Name != "Chewie" {
		t.Errorf("unexpected embed: %#v", e)
	}
}

func TestExtractTextInput(t *testing.T) {
	data := discordgo.ModalSubmitInteractionData{
		CustomID: "wookiee_modal",
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "other", Value: "nope"},
			}},
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: "text", Value: "hello"},
			}},
		},
	}
	if got := ExtractTextInput(data, "text"); got != "hello" {
		t.Errorf("ExtractTextInput() = %q, want hello", got)
	}
	if got := ExtractTextInput(data, "missing"); got != "" {
		t.Errorf("ExtractTextInput() = %q, want empty", got)
	}
}
