package authutils

import (
	"testing"

	"ats-backend/config"
	"ats-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestGetToken(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "secret"
	config.Conf.Auth.JWTExpireInSec = 60

	tokenString, err := GetToken("u-1", "Meera", models.UserRoleClient, "c-1")
	require.Nil(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.Nil(t, err)
	info := ClaimsToUserInfo(token.Claims.(jwt.MapClaims))
	require.Equal(t, "u-1", info.ID)
	require.Equal(t, "Meera", info.Name)
	require.Equal(t, models.UserRoleClient, info.Role)
	require.Equal(t, "c-1", info.ClientID)

	t.Run("missing claims", func(t *testing.T) {
		info := ClaimsToUserInfo(jwt.MapClaims{"sub": 15})
		require.Equal(t, "", info.ID)
		require.Equal(t, models.UserRole(""), info.Role)
	})
}
