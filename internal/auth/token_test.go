package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-at-least-32-chars-long!!"

func TestTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewTokenService([]byte(testSecret), time.Hour)

	tests := []struct {
		name        string
		token       func(t *testing.T) string
		expectedErr error
	}{
		{
			name: "valid token round-trips the username",
			token: func(t *testing.T) string {
				token, err := svc.Generate("alice")
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				expired := NewTokenService([]byte(testSecret), -time.Hour)
				token, err := expired.Generate("alice")
				require.NoError(t, err)
				return token
			},
			expectedErr: ErrExpiredToken,
		},
		{
			name: "tampered signature",
			token: func(t *testing.T) string {
				other := NewTokenService([]byte("wrong-secret"), time.Hour)
				token, err := other.Generate("alice")
				require.NoError(t, err)
				return token
			},
			expectedErr: ErrInvalidSignature,
		},
		{
			name:        "malformed token",
			token:       func(t *testing.T) string { return "not.a.jwt" },
			expectedErr: ErrInvalidToken,
		},
		{
			name:        "empty token",
			token:       func(t *testing.T) string { return "" },
			expectedErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			username, err := svc.Validate(tt.token(t))
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", username)
		})
	}
}
