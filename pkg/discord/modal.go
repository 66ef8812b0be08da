package discord

import "github.com/bwmarrin/discordgo"

// ExtractTextInput returns the value of the text input identified by customID
// in a submitted modal, or "" when absent.
func ExtractTextInput(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if input, ok := rc.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}
