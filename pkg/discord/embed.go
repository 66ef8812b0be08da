package discord

import (
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

const (
	embedColor = 0x8B5A2B
	// Discord caps embed field values at 1024 characters and descriptions at 4096.
	embedFieldMaxRunes       = 1024
	embedDescriptionMaxRunes = 4096
	ellipsis                 = "…"
)

// BuildTranslationEmbed shows a translation with its source text below it.
// The translation goes in the description so a full Discord message worth of
// text fits; only the source field may be shortened.
func BuildTranslationEmbed(sourceLabel, source, resultLabel, result, displayName, avatarURL string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       resultLabel,
		Description: truncateRunes(result, embedDescriptionMaxRunes),
		Color:       embedColor,
		Author:      &discordgo.MessageEmbedAuthor{Name: displayName, IconURL: avatarURL},
		Fields: []*discordgo.MessageEmbedField{
			{Name: sourceLabel, Value: truncateRunes(source, embedFieldMaxRunes)},
		},
	}
}

// BuildStatsEmbed wraps a stats summary.
func BuildStatsEmbed(title, summary string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: summary,
		Color:       embedColor,
	}
}

// truncateRunes shortens s to at most max runes, marking the cut with an ellipsis.
func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	n := 0
	for i := range s {
		if n == max-1 {
			return s[:i] + ellipsis
		}
		n++
	}
	return s
}
