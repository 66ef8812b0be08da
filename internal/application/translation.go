package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"wookiee/internal/domain"
	"wookiee/internal/domain/entities"
	"wookiee/internal/domain/shyriiwook"
	"wookiee/internal/ports/input"
	"wookiee/internal/ports/output"
)

var _ input.TranslationUseCase = (*TranslationService)(nil)

// TranslationService validates requests, runs the translator and records
// the result when a history repository is available.
type TranslationService struct {
	translationRepo output.TranslationRepository
	maxInputRunes   int
	maxResultRunes  int
	now             func() time.Time
}

// NewTranslationService creates a TranslationService. translationRepo may be
// nil, in which case nothing is recorded. A zero limit disables that check.
func NewTranslationService(translationRepo output.TranslationRepository, maxInputRunes, maxResultRunes int) *TranslationService {
	return &TranslationService{
		translationRepo: translationRepo,
		maxInputRunes:   maxInputRunes,
		maxResultRunes:  maxResultRunes,
		now:             time.Now,
	}
}

func (s *TranslationService) Translate(ctx context.Context, req input.TranslationRequest) (*entities.Translation, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, domain.ErrEmptyText
	}
	if s.maxInputRunes > 0 && utf8.RuneCountInString(req.Text) > s.maxInputRunes {
		return nil, domain.ErrTextTooLong
	}

	result := shyriiwook.Translate(req.Text)
	if s.maxResultRunes > 0 && utf8.RuneCountInString(result) > s.maxResultRunes {
		return nil, domain.ErrResultTooLong
	}

	translation := &entities.Translation{
		UserID:    req.UserID,
		GuildID:   req.GuildID,
		Source:    req.Text,
		Result:    result,
		CreatedAt: s.now(),
	}
	if s.translationRepo != nil {
		if err := s.translationRepo.Create(ctx, translation); err != nil {
			log.Printf("⚠️ Historique: enregistrement impossible (user=%s): %v", req.UserID, err)
		}
	}
	return translation, nil
}

func (s *TranslationService) Stats(ctx context.Context, userID string) (*entities.UsageStats, error) {
	if s.translationRepo == nil {
		return nil, domain.ErrHistoryDisabled
	}
	stats, err := s.translationRepo.StatsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	if stats.Count == 0 {
		return nil, domain.ErrNoHistory
	}
	return stats, nil
}
