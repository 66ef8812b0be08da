package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "plain", err: errors.New("boom"), want: ""},
		{name: "sentinel", err: ErrEmptyText, want: "empty_text"},
		{name: "wrapped", err: fmt.Errorf("translate: %w", ErrTextTooLong), want: "text_too_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorsIs(t *testing.T) {
	err := fmt.Errorf("stats: %w", ErrNoHistory)
	if !errors.Is(err, ErrNoHistory) {
		t.Fatalf("expected errors.Is to match ErrNoHistory")
	}
	if errors.Is(err, ErrHistoryDisabled) {
		t.Fatalf("unexpected match with ErrHistoryDisabled")
	}
}
