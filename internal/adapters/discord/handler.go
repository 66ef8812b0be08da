package discord

import (
	"wookiee/internal/ports/input"
	"wookiee/internal/ports/output"
)

// Localizer renders user-facing messages and their per-language variants.
type Localizer interface {
	output.T
	Localizations(key string) map[string]string
}

// Handler handles Discord interactions using use cases.
type Handler struct {
	translationUseCase input.TranslationUseCase
	t                  Localizer
	maxInputRunes      int
}

// NewHandler creates a Handler.
func NewHandler(
	translationUseCase input.TranslationUseCase,
	t Localizer,
	maxInputRunes int,
) *Handler {
	return &Handler{
		translationUseCase: translationUseCase,
		t:                  t,
		maxInputRunes:      maxInputRunes,
	}
}
