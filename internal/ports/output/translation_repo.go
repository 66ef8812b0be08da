package output

import (
	"context"

	"wookiee/internal/domain/entities"
)

type TranslationRepository interface {
	Create(ctx context.Context, translation *entities.Translation) error
	StatsByUserID(ctx context.Context, userID string) (*entities.UsageStats, error)
}
