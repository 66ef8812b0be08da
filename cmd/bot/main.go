package main

import (
	"context"
	"log"
	"os"

	"wookiee/internal/adapters/discord"
	"wookiee/internal/application"
	"wookiee/internal/config"
	"wookiee/internal/infrastructure/database"
	"wookiee/internal/infrastructure/i18n"
	"wookiee/internal/ports/output"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	var translationRepo output.TranslationRepository
	if cfg.HistoryEnabled() {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("❌ Erreur lors des migrations: %v", err)
		}

		pool, err := database.NewPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
		}
		defer pool.Close()
		translationRepo = database.NewTranslationRepository(pool)
	} else {
		log.Println("ℹ️ DATABASE_URL absente: historique des traductions désactivé.")
	}

	translationUC := application.NewTranslationService(translationRepo, cfg.MaxInputRunes, cfg.MaxResultRunes)
	translator := i18n.NewTranslator(cfg.Locale)

	bot, err := discord.NewBot(cfg, translationUC, translator)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	if err := bot.Start(); err != nil {
		log.Printf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
