package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"wookiee/internal/domain/entities"
	"wookiee/internal/ports/input"
	pkgdiscord "wookiee/pkg/discord"
)

// translate runs the use case for the interaction's user. On failure the
// returned message is the localized reason to show.
func (h *Handler) translate(ctx context.Context, i *discordgo.Interaction, text string) (*entities.Translation, string) {
	req := input.TranslationRequest{GuildID: i.GuildID, Text: text}
	if u := interactionUser(i); u != nil {
		req.UserID = u.ID
	}
	tr, err := h.translationUseCase.Translate(ctx, req)
	if err != nil {
		data := map[string]any{"Max": h.maxInputRunes}
		return nil, pkgdiscord.DomainErrorMessage(h.t, interactionLocale(i), err, data)
	}
	return tr, ""
}

func (h *Handler) respondTranslation(s *discordgo.Session, i *discordgo.InteractionCreate, text string) {
	tr, reason := h.translate(context.Background(), i.Interaction, text)
	if tr == nil {
		respondEphemeral(s, i.Interaction, reason)
		return
	}
	respond(s, i.Interaction, &discordgo.InteractionResponseData{
		Content:         tr.Result,
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	})
}

func (h *Handler) respondTranslationEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, text string) {
	tr, reason := h.translate(context.Background(), i.Interaction, text)
	if tr == nil {
		respondEphemeral(s, i.Interaction, reason)
		return
	}
	embed := h.translationEmbed(i.Interaction, tr)
	respond(s, i.Interaction, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

func (h *Handler) translationEmbed(i *discordgo.Interaction, tr *entities.Translation) *discordgo.MessageEmbed {
	locale := interactionLocale(i)
	var avatarURL string
	if u := interactionUser(i); u != nil {
		avatarURL = u.AvatarURL("")
	}
	return pkgdiscord.BuildTranslationEmbed(
		h.t.T(locale, "embed_source", nil), tr.Source,
		h.t.T(locale, "embed_result", nil), tr.Result,
		interactionDisplayName(i), avatarURL,
	)
}

// HandleModalSubmit translates the text typed in the translation modal.
func (h *Handler) HandleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	text := pkgdiscord.ExtractTextInput(i.ModalSubmitData(), inputTextID)
	h.respondTranslation(s, i, text)
}

// HandleStatsCommand shows the caller's translation statistics.
func (h *Handler) HandleStatsCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := interactionLocale(i.Interaction)
	summary, err := h.statsSummary(context.Background(), i.Interaction)
	if err != nil {
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(h.t, locale, err, nil))
		return
	}
	respond(s, i.Interaction, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildStatsEmbed(h.t.T(locale, "stats_title", nil), summary)},
		Flags:  discordgo.MessageFlagsEphemeral,
	})
}

func (h *Handler) statsSummary(ctx context.Context, i *discordgo.Interaction) (string, error) {
	u := interactionUser(i)
	if u == nil {
		return "", fmt.Errorf("stats: interaction sans utilisateur")
	}
	stats, err := h.translationUseCase.Stats(ctx, u.ID)
	if err != nil {
		return "", err
	}
	return h.t.T(interactionLocale(i), "stats_summary", map[string]any{
		"Count":  stats.Count,
		"Runes":  stats.SourceRunes,
		"LastAt": pkgdiscord.FormatRelativeTimestamp(stats.LastAt),
	}), nil
}
