package ftpr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/ftpr/pkg/ftpr"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ftpr.ExitSuccess},
		{"general error", errors.New("something went wrong"), ftpr.ExitGeneralError},
		{"invalid config", ftpr.ErrInvalidConfig, ftpr.ExitConfigError},
		{"connection failed", ftpr.ErrConnectionFailed, ftpr.ExitConnectionError},
		{"auth failed", ftpr.ErrAuthFailed, ftpr.ExitAuthError},
		{"retry exhausted", ftpr.ErrRetryExhausted, ftpr.ExitRetryExhausted},
		{"integrity mismatch", ftpr.ErrIntegrityMismatch, ftpr.ExitIntegrityError},
		{"unsupported operation", ftpr.ErrUnsupportedOperation, ftpr.ExitUsageError},
		{"unknown flag", errors.New("unknown flag --foo"), ftpr.ExitUsageError},
		{"accepts args", errors.New("accepts 1 arg(s), received 0"), ftpr.ExitUsageError},
		{"connection refused pattern", errors.New("dial tcp 10.0.0.1:21: connection refused"), ftpr.ExitConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ftpr.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_WrappedSentinels(t *testing.T) {
	// Sentinels must be detected through wrapping chains
	wrapped := fmt.Errorf("download report.csv: %w: digest mismatch", ftpr.ErrIntegrityMismatch)
	if got := ftpr.ExitCodeForError(wrapped); got != ftpr.ExitIntegrityError {
		t.Errorf("ExitCodeForError(wrapped integrity) = %d, want %d", got, ftpr.ExitIntegrityError)
	}

	exhausted := fmt.Errorf("%w after 5 attempts: %w", ftpr.ErrRetryExhausted, errors.New("i/o timeout"))
	if got := ftpr.ExitCodeForError(exhausted); got != ftpr.ExitRetryExhausted {
		t.Errorf("ExitCodeForError(wrapped exhausted) = %d, want %d", got, ftpr.ExitRetryExhausted)
	}
	if !errors.Is(exhausted, ftpr.ErrRetryExhausted) {
		t.Error("expected errors.Is to match ErrRetryExhausted through wrapping")
	}
}
