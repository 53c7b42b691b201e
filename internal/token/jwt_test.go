package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/clipstream/account-server/internal/model"
)

func newTestJWT(t *testing.T) *JWT {
	t.Helper()
	j, err := NewJWT("access-secret", "refresh-secret", 15*time.Minute, 240*time.Hour)
	require.NoError(t, err)
	return j
}

func TestNewJWT_EmptySecret(t *testing.T) {
	_, err := NewJWT("", "refresh", time.Minute, time.Hour)
	require.Error(t, err)

	_, err = NewJWT("access", "", time.Minute, time.Hour)
	require.Error(t, err)
}

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := newTestJWT(t)
	claims := model.AccessClaims{
		UserID:   uuid.New(),
		Email:    "alice@x.com",
		Username: "alice",
		FullName: "Alice Example",
	}

	access, err := j.GenerateAccessToken(claims)
	require.NoError(t, err)
	got, err := j.ParseAccessToken(access)
	require.NoError(t, err)
	require.Equal(t, claims, got)
}

func TestJWT_RefreshToken_Roundtrip(t *testing.T) {
	j := newTestJWT(t)
	u := uuid.New()

	refresh, err := j.GenerateRefreshToken(u)
	require.NoError(t, err)

	got, err := j.ParseRefreshToken(refresh)
	require.NoError(t, err)
	require.Equal(t, u, got)
}

func TestJWT_RefreshToken_OnlyUserID(t *testing.T) {
	j := newTestJWT(t)
	u := uuid.New()

	refresh, err := j.GenerateRefreshToken(u)
	require.NoError(t, err)

	// The refresh secret parses it, but no identity payload besides the ID
	// must survive the roundtrip.
	claims, err := j.parse(refresh, j.refreshSecret, typeRefresh)
	require.NoError(t, err)
	require.Empty(t, claims.Email)
	require.Empty(t, claims.Username)
	require.Empty(t, claims.FullName)
}

func TestJWT_TokenClass_Mismatch(t *testing.T) {
	j := newTestJWT(t)
	claims := model.AccessClaims{UserID: uuid.New(), Email: "a@b.c", Username: "a", FullName: "A"}

	access, err := j.GenerateAccessToken(claims)
	require.NoError(t, err)

	_, err = j.ParseRefreshToken(access)
	require.ErrorIs(t, err, model.ErrTokenMalformed)

	refresh, err := j.GenerateRefreshToken(claims.UserID)
	require.NoError(t, err)

	_, err = j.ParseAccessToken(refresh)
	require.ErrorIs(t, err, model.ErrTokenMalformed)
}

func TestJWT_WrongSecret(t *testing.T) {
	j := newTestJWT(t)
	other, err := NewJWT("other-access", "other-refresh", time.Minute, time.Hour)
	require.NoError(t, err)

	access, err := j.GenerateAccessToken(model.AccessClaims{UserID: uuid.New()})
	require.NoError(t, err)

	_, err = other.ParseAccessToken(access)
	require.ErrorIs(t, err, model.ErrTokenMalformed)
}

func TestJWT_Expired(t *testing.T) {
	j, err := NewJWT("access-secret", "refresh-secret", -time.Minute, -time.Minute)
	require.NoError(t, err)

	access, err := j.GenerateAccessToken(model.AccessClaims{UserID: uuid.New()})
	require.NoError(t, err)
	_, err = j.ParseAccessToken(access)
	require.ErrorIs(t, err, model.ErrTokenExpired)

	refresh, err := j.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)
	_, err = j.ParseRefreshToken(refresh)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_Malformed(t *testing.T) {
	j := newTestJWT(t)

	_, err := j.ParseAccessToken("not-a-token")
	require.ErrorIs(t, err, model.ErrTokenMalformed)
}
