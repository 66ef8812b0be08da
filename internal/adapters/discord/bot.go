package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"wookiee/internal/config"
	"wookiee/internal/ports/input"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
}

// NewBot creates a Bot and wires the translation use case to the handler.
func NewBot(cfg *config.Config, translationUC input.TranslationUseCase, t Localizer) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("création de la session Discord: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(translationUC, t, cfg.MaxInputRunes),
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case commandWookiee:
			b.handler.HandleWookieeCommand(s, i)
		case commandStats:
			b.handler.HandleStatsCommand(s, i)
		case commandMessageWookiee:
			b.handler.HandleMessageCommand(s, i)
		}
	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == modalTranslateID {
			b.handler.HandleModalSubmit(s, i)
		}
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range b.handler.commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			log.Printf("⚠️ Erreur lors de l'enregistrement de la commande %s: %v", cmd.Name, err)
		}
	}

	fmt.Println(b.handler.t.T(b.config.Locale, "bot_ready", nil))
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
