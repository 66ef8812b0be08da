package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// Nick > GlobalName > Username
func resolveDisplayName(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}

// interactionUser returns the invoking user: Member.User in guilds, User in DMs.
func interactionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func interactionDisplayName(i *discordgo.Interaction) string {
	if name := resolveDisplayName(i.Member); name != "" {
		return name
	}
	if u := i.User; u != nil {
		if u.GlobalName != "" {
			return u.GlobalName
		}
		return u.Username
	}
	return ""
}

// interactionLocale prefers the user's client locale over the guild's.
func interactionLocale(i *discordgo.Interaction) string {
	if i.Locale != "" {
		return string(i.Locale)
	}
	if i.GuildLocale != nil {
		return string(*i.GuildLocale)
	}
	return ""
}

func respond(s *discordgo.Session, i *discordgo.Interaction, data *discordgo.InteractionResponseData) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		logInteractionError("réponse", err)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, content string) {
	respond(s, i, &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

func logInteractionError(action string, err error) {
	log.Printf("❌ Interaction Discord (%s): %v", action, err)
}
