package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidDiskCount, "disk count must be positive, got %d", -3)

	if err.Code != ErrCodeInvalidDiskCount {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidDiskCount)
	}
	if want := "disk count must be positive, got -3"; err.Message != want {
		t.Errorf("Message = %q, want %q", err.Message, want)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
	if !strings.Contains(err.Error(), "INVALID_DISK_COUNT") {
		t.Errorf("Error() = %q, missing code prefix", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(ErrCodeInternal, cause, "render failed")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("Error() = %q, should include cause", err.Error())
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"MatchingCode", New(ErrCodeIllegalMove, "bad move"), ErrCodeIllegalMove, true},
		{"DifferentCode", New(ErrCodeIllegalMove, "bad move"), ErrCodeInvalidPeg, false},
		{"PlainError", stderrors.New("plain"), ErrCodeIllegalMove, false},
		{"WrappedInFmt", fmt.Errorf("outer: %w", New(ErrCodeInvalidPeg, "peg 7")), ErrCodeInvalidPeg, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeSessionNotFound, "gone")); got != ErrCodeSessionNotFound {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeSessionNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown format: gif")
	if got := UserMessage(err); got != "unknown format: gif" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage = %q", got)
	}
}
