package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akgarhwal/vault/internal/adapter"
	"github.com/akgarhwal/vault/internal/service"
	"github.com/akgarhwal/vault/internal/validators"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrapped auth failure", err: fmt.Errorf("unlock: %w", service.ErrAuthenticationFailed), want: MsgWrongPassword},
		{name: "adapter permission", err: fmt.Errorf("write: %w", adapter.ErrPermissionDenied), want: MsgMirrorAccessDenied},
		{name: "service permission", err: service.ErrPermissionDenied, want: MsgMirrorAccessDenied},
		{name: "not confirmed", err: service.ErrNotConfirmed, want: MsgCancelled},
		{name: "validation", err: fmt.Errorf("add item: %w", validators.ErrInvalidCardExpiry), want: validators.ErrInvalidCardExpiry.Error()},
		{name: "unknown", err: errors.New("disk on fire"), want: "disk on fire"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
