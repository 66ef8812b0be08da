package domain

import "errors"

// Error is a domain error carrying a stable code that adapters resolve to a
// localized message.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable identifier of the error.
func (e *Error) Code() string { return e.code }

func newError(code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Domain errors.
var (
	ErrEmptyText       = newError("empty_text", "texte à traduire vide")
	ErrTextTooLong     = newError("text_too_long", "texte à traduire trop long")
	ErrResultTooLong   = newError("result_too_long", "traduction trop longue pour être envoyée")
	ErrHistoryDisabled = newError("history_disabled", "historique des traductions désactivé")
	ErrNoHistory       = newError("no_history", "aucune traduction enregistrée pour cet utilisateur")
)

// Code extracts the domain error code from err, or "" when err does not wrap
// a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}
