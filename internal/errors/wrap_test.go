package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorWrapper(t *testing.T) {
	wrapper := NewWrapper("chatroom", "latest_post")

	t.Run("Wrap returns nil for nil error", func(t *testing.T) {
		if result := wrapper.Wrap(nil, "unused"); result != nil {
			t.Errorf("expected nil, got %v", result)
		}
	})

	t.Run("Wrap creates WrappedError", func(t *testing.T) {
		wrapped := wrapper.Wrap(ErrNoMessagesFound, "No messages found in general.")

		var wrappedErr *WrappedError
		if !errors.As(wrapped, &wrappedErr) {
			t.Fatal("expected WrappedError type")
		}
		if wrappedErr.Module != "chatroom" {
			t.Errorf("expected module 'chatroom', got '%s'", wrappedErr.Module)
		}
		if wrappedErr.Operation != "latest_post" {
			t.Errorf("expected operation 'latest_post', got '%s'", wrappedErr.Operation)
		}
		if !errors.Is(wrapped, ErrNoMessagesFound) {
			t.Error("wrapped error should unwrap to base error")
		}
	})

	t.Run("Wrapf formats message", func(t *testing.T) {
		wrapped := wrapper.Wrapf(ErrNoMessagesFound, "No messages found in %s.", "Union South")
		if got := GetUserMessage(wrapped, ""); got != "No messages found in Union South." {
			t.Errorf("unexpected user message %q", got)
		}
	})

	t.Run("Wrapf returns nil for nil error", func(t *testing.T) {
		if result := wrapper.Wrapf(nil, "%s", "x"); result != nil {
			t.Errorf("expected nil, got %v", result)
		}
	})
}

func TestGetUserMessage(t *testing.T) {
	wrapped := NewWrapper("chatroom", "chatroom_cards").Wrap(ErrMissingParameter, "Which chatroom?")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"wrapped", wrapped, "Which chatroom?"},
		{"wrapped deeper", fmt.Errorf("dispatch: %w", wrapped), "Which chatroom?"},
		{"plain error uses fallback", errors.New("secret internals"), "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err, "fallback"); got != tt.want {
				t.Errorf("GetUserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
