package input

import (
	"context"

	"wookiee/internal/domain/entities"
)

// TranslationRequest is a text to translate and who asked for it.
type TranslationRequest struct {
	UserID  string
	GuildID string
	Text    string
}

type TranslationUseCase interface {
	Translate(ctx context.Context, req TranslationRequest) (*entities.Translation, error)
	Stats(ctx context.Context, userID string) (*entities.UsageStats, error)
}
