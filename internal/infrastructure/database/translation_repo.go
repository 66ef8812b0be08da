package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"wookiee/internal/domain/entities"
	"wookiee/internal/ports/output"
)

var _ output.TranslationRepository = (*TranslationRepository)(nil)

// DBTX is the subset of pgxpool.Pool, pgx.Conn and pgx.Tx used by the repository.
type DBTX interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const createTranslation = `
INSERT INTO translations (user_id, guild_id, source, result, created_at)
VALUES ($1, $2, $3, $4, COALESCE($5, NOW()))
RETURNING id, created_at`

// char_length counts characters, matching the rune count used by the service.
const statsByUserID = `
SELECT COUNT(*), COALESCE(SUM(char_length(source)), 0), MAX(created_at)
FROM translations
WHERE user_id = $1`

// TranslationRepository implements output.TranslationRepository using pgx.
type TranslationRepository struct {
	db DBTX
}

// NewTranslationRepository creates a TranslationRepository.
func NewTranslationRepository(db DBTX) *TranslationRepository {
	return &TranslationRepository{db: db}
}

func (r *TranslationRepository) Create(ctx context.Context, translation *entities.Translation) error {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, createTranslation,
		translation.UserID,
		translation.GuildID,
		translation.Source,
		translation.Result,
		timeToPgtypeTimestamptz(translation.CreatedAt),
	).Scan(&id, &createdAt)
	if err != nil {
		return fmt.Errorf("create translation: %w", err)
	}
	translation.ID = uint(id)
	translation.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

func (r *TranslationRepository) StatsByUserID(ctx context.Context, userID string) (*entities.UsageStats, error) {
	var row statsRow
	if err := r.db.QueryRow(ctx, statsByUserID, userID).Scan(&row.Count, &row.SourceRunes, &row.LastAt); err != nil {
		return nil, fmt.Errorf("get translation stats by user id: %w", err)
	}
	stats := statsToDomain(userID, row)
	return &stats, nil
}
