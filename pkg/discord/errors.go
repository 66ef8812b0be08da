package discord

import (
	"wookiee/internal/domain"
	"wookiee/internal/ports/output"
)

const unknownErrorKey = "unknown_error"

// DomainErrorMessage resolves err to a user-facing message in locale.
// Domain error codes double as message keys; any other error yields the
// generic message. data feeds the message template (may be nil).
func DomainErrorMessage(t output.T, locale string, err error, data map[string]any) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return t.T(locale, code, data)
	}
	return t.T(locale, unknownErrorKey, nil)
}
