package main

import (
	"log"
	"os"

	"wookiee/internal/adapters/cli"
	"wookiee/internal/config"
	"wookiee/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.LoadCLI()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	streams := cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	os.Exit(cli.Run(os.Args[1:], streams, i18n.NewTranslator(cfg.Locale), cfg.Locale))
}
