package api

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	err := NewError(KindNotFound, "course missing", nil)
	if got := KindOf(err); got != KindNotFound {
		t.Errorf("KindOf = %v, want KindNotFound", got)
	}

	wrapped := fmt.Errorf("loading course: %w", err)
	if got := KindOf(wrapped); got != KindNotFound {
		t.Errorf("KindOf(wrapped) = %v, want KindNotFound", got)
	}

	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want KindUnknown", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(KindNetwork, "cannot reach the tutor service", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to see the wrapped cause")
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"typed", NewError(KindServer, "generation failed", nil), "generation failed"},
		{"plain", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err); got != tt.want {
				t.Errorf("Message = %q, want %q", got, tt.want)
			}
		})
	}
}
