package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"wookiee/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// statsRow is the result of the per-user aggregate query.
type statsRow struct {
	Count       int64
	SourceRunes int64
	LastAt      pgtype.Timestamptz
}

func statsToDomain(userID string, row statsRow) entities.UsageStats {
	return entities.UsageStats{
		UserID:      userID,
		Count:       row.Count,
		SourceRunes: row.SourceRunes,
		LastAt:      pgtypeTimestamptzToTime(row.LastAt),
	}
}
