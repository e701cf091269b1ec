package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cleaning-booking/internal/domain/user"
	"github.com/BruksfildServices01/cleaning-booking/internal/models"
)

func TestTokens_IssueAndParse(t *testing.T) {
	tokens := NewTokens("secret", 10*time.Hour)
	u := &models.User{ID: 42, Email: "ann@example.com", Name: "Ann", RoleID: 3, Phone: "+7900"}

	raw, err := tokens.Issue(u)
	require.NoError(t, err)

	p, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uint(42), p.UserID)
	assert.Equal(t, "ann@example.com", p.Email)
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, user.RoleAdmin, p.Role)
	assert.Equal(t, "+7900", p.Phone)
	assert.Equal(t, "", p.Avatar)
	assert.True(t, p.IsAdmin())
}

func TestTokens_ClaimsShape(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	raw, err := tokens.Issue(&models.User{ID: 1, Email: "a@b.c", Name: "A", RoleID: 1})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(raw, claims)
	require.NoError(t, err)

	for _, key := range []string{"id", "email", "name", "roleId", "avatar", "phone", "exp"} {
		assert.Contains(t, claims, key)
	}
	assert.Nil(t, claims["avatar"])
}

func TestTokens_Rejects(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	u := &models.User{ID: 1, Email: "a@b.c", Name: "A", RoleID: 1}

	t.Run("wrong secret", func(t *testing.T) {
		raw, err := NewTokens("other", time.Hour).Issue(u)
		require.NoError(t, err)

		_, err = tokens.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		raw, err := tokens.Issue(u)
		require.NoError(t, err)

		later := NewTokens("secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

		_, err = later.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("unknown role", func(t *testing.T) {
		raw, err := tokens.Issue(&models.User{ID: 1, RoleID: 9})
		require.NoError(t, err)

		_, err = tokens.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPrincipal_NilSafe(t *testing.T) {
	var p *Principal
	assert.False(t, p.IsAdmin())
	assert.Nil(t, p.ID())

	p = &Principal{UserID: 5, Role: user.RoleEmployee}
	assert.True(t, p.IsEmployee())
	assert.Equal(t, uint(5), *p.ID())
}
