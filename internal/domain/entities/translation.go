package entities

import "time"

// Translation is a text translated on behalf of a user.
type Translation struct {
	ID        uint
	UserID    string
	GuildID   string // empty for direct messages
	Source    string
	Result    string
	CreatedAt time.Time
}

// UsageStats aggregates the translations of a single user.
type UsageStats struct {
	UserID      string
	Count       int64
	SourceRunes int64
	LastAt      time.Time
}
