package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsValidationError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"amount", ErrInvalidAmount, true},
		{"wrapped content", fmt.Errorf("create: %w", ErrContentTooLong), true},
		{"type", ErrInvalidTransactionType, true},
		{"base", ErrInvalidInput, true},
		{"not found", ErrTransactionNotFound, false},
		{"storage", ErrStorageUnavailable, false},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidationError(tt.err); got != tt.want {
				t.Errorf("IsValidationError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
