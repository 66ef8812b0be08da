package discord

import (
	"fmt"
	"time"
)

// FormatRelativeTimestamp renders t as a Discord timestamp markup shown
// relative to the reader's clock ("2 hours ago"). Zero time renders as "-".
func FormatRelativeTimestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}
