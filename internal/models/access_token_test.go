package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_IsExpiredAt(t *testing.T) {
	now := time.Date(2025, 9, 26, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Second)
	after := now.Add(time.Second)

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{name: "no expiration", expiresAt: nil, want: false},
		{name: "expired", expiresAt: &before, want: true},
		{name: "expires exactly now", expiresAt: &now, want: false},
		{name: "still valid", expiresAt: &after, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := &AccessToken{ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, token.IsExpiredAt(now))
		})
	}
}

func TestAccessToken_SetExpired(t *testing.T) {
	t.Run("BackdatesExpiration", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		token := &AccessToken{ID: 7, Token: "tok", ExpiresAt: &future}

		token.SetExpired(true)

		require.NotNil(t, token.ExpiresAt)
		assert.True(t, token.IsExpired())
		assert.WithinDuration(t, time.Now().Add(-expiredBackdate), *token.ExpiresAt, 5*time.Second)
		assert.Equal(t, int64(7), token.ID)
		assert.Equal(t, "tok", token.Token)
	})

	t.Run("ExpiresTokenWithoutExpiration", func(t *testing.T) {
		token := &AccessToken{}
		token.SetExpired(true)
		assert.True(t, token.IsExpired())
	})

	t.Run("FalseIsNoOp", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		token := &AccessToken{ExpiresAt: &future}

		token.SetExpired(false)

		assert.Same(t, &future, token.ExpiresAt)
		assert.False(t, token.IsExpired())
	})

	t.Run("FalseKeepsRevokedToken", func(t *testing.T) {
		past := time.Now().Add(-time.Minute)
		token := &AccessToken{ExpiresAt: &past}

		token.SetExpired(false)

		assert.Same(t, &past, token.ExpiresAt)
		assert.True(t, token.IsExpired())
	})

	t.Run("FalseWithoutExpiration", func(t *testing.T) {
		token := &AccessToken{}
		token.SetExpired(false)
		assert.Nil(t, token.ExpiresAt)
		assert.False(t, token.IsExpired())
	})
}

func TestAccessTokenType_Expiration(t *testing.T) {
	tt := AccessTokenType{Code: TokenTypeAPI, ExpirationInterval: DefaultTokenExpirationInterval}
	assert.Equal(t, time.Hour, tt.Expiration())
}

func TestNewTokenResponse(t *testing.T) {
	token := AccessToken{TypeCode: TokenTypeRemember, Token: "tok"}
	token.SetExpired(true)

	resp := NewTokenResponse(token)
	assert.Equal(t, TokenTypeRemember, resp.Type)
	assert.Equal(t, "tok", resp.Token)
	assert.True(t, resp.Expired)
}
