package discord

import (
	"github.com/bwmarrin/discordgo"
)

const (
	commandWookiee        = "wookiee"
	commandStats          = "wookiee-stats"
	commandMessageWookiee = "Translate to Shyriiwook"
	optionText            = "text"

	modalTranslateID = "wookiee_modal"
	inputTextID      = "text"

	// Discord caps slash command string options at 6000 and text inputs at 4000 characters.
	discordMaxTextInput = 4000
)

// commands returns the application commands registered by the bot.
func (h *Handler) commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     commandWookiee,
			Description:              h.t.T("en", "command_wookiee_description", nil),
			DescriptionLocalizations: h.localizations("command_wookiee_description"),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:                     discordgo.ApplicationCommandOptionString,
					Name:                     optionText,
					Description:              h.t.T("en", "command_wookiee_text_description", nil),
					DescriptionLocalizations: *h.localizations("command_wookiee_text_description"),
					Required:                 false,
					MaxLength:                h.inputLimit(),
				},
			},
		},
		{
			Name:                     commandStats,
			Description:              h.t.T("en", "command_stats_description", nil),
			DescriptionLocalizations: h.localizations("command_stats_description"),
		},
		{
			Type:              discordgo.MessageApplicationCommand,
			Name:              commandMessageWookiee,
			NameLocalizations: h.localizations("command_message_translate"),
		},
	}
}

// localizations maps bundle languages to the Discord locales they serve.
func (h *Handler) localizations(key string) *map[discordgo.Locale]string {
	out := make(map[discordgo.Locale]string)
	for tag, msg := range h.t.Localizations(key) {
		switch tag {
		case "en":
			out[discordgo.EnglishUS] = msg
			out[discordgo.EnglishGB] = msg
		default:
			loc := discordgo.Locale(tag)
			if _, ok := discordgo.Locales[loc]; ok {
				out[loc] = msg
			}
		}
	}
	return &out
}

func (h *Handler) inputLimit() int {
	if h.maxInputRunes <= 0 || h.maxInputRunes > discordMaxTextInput {
		return discordMaxTextInput
	}
	return h.maxInputRunes
}

// HandleWookieeCommand translates the text option, or opens a modal when the
// option is missing so longer texts can be typed.
func (h *Handler) HandleWookieeCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	text, ok := stringOption(i.ApplicationCommandData().Options, optionText)
	if !ok {
		h.openTranslateModal(s, i)
		return
	}
	h.respondTranslation(s, i, text)
}

// HandleMessageCommand translates the content of the targeted message.
func (h *Handler) HandleMessageCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	var content string
	if data.Resolved != nil {
		if msg, ok := data.Resolved.Messages[data.TargetID]; ok && msg != nil {
			content = msg.Content
		}
	}
	h.respondTranslationEmbed(s, i, content)
}

func (h *Handler) openTranslateModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	locale := interactionLocale(i.Interaction)
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: modalTranslateID,
			Title:    h.t.T(locale, "modal_title", nil),
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  inputTextID,
						Label:     h.t.T(locale, "command_wookiee_text_description", nil),
						Style:     discordgo.TextInputParagraph,
						Required:  true,
						MaxLength: h.inputLimit(),
					},
				}},
			},
		},
	})
	if err != nil {
		logInteractionError("ouverture du modal", err)
	}
}

func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) (string, bool) {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue(), true
		}
	}
	return "", false
}
