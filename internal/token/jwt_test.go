package token

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/webmob/auth-api/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 0)
	user := model.User{ID: uuid.New(), Name: "Jane", Email: "jane@x.com"}

	tokenString, err := j.Generate(user)
	require.NoError(t, err)

	identity, err := j.Parse(tokenString)
	require.NoError(t, err)
	require.Equal(t, user.ID, identity.UserID)
	require.Equal(t, user.Email, identity.Email)
	require.Equal(t, user.Name, identity.Name)
}

func TestJWT_Expired(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	user := model.User{ID: uuid.New(), Email: "jane@x.com"}

	tokenString, err := j.generate(user, -time.Minute)
	require.NoError(t, err)

	_, err = j.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Tampered(t *testing.T) {
	j := NewJWT("secret", time.Hour)
	user := model.User{ID: uuid.New(), Email: "jane@x.com"}

	tokenString, err := j.Generate(user)
	require.NoError(t, err)

	parts := strings.Split(tokenString, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = j.Parse(tampered)
	require.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	issuer := NewJWT("secret", time.Hour)
	verifier := NewJWT("other-secret", time.Hour)
	user := model.User{ID: uuid.New(), Email: "jane@x.com"}

	tokenString, err := issuer.Generate(user)
	require.NoError(t, err)

	_, err = verifier.Parse(tokenString)
	require.Error(t, err)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret", time.Hour)

	_, err := j.Parse("not-a-token")
	require.Error(t, err)

	_, err = j.Parse("")
	require.Error(t, err)
}
