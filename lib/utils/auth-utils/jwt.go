package authutils

import (
	"time"

	"ats-backend/config"
	"ats-backend/models"
	authapimodels "ats-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func GetToken(userID, name string, role models.UserRole, clientID string) (tokenString string, err error) {
	claims := jwt.MapClaims{
		"name":      name,
		"sub":       userID,
		"role":      string(role),
		"client_id": clientID,
		"exp":       time.Now().Add(time.Second * time.Duration(config.Conf.Auth.JWTExpireInSec)).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Conf.Auth.JWTSecret))
}

func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

// ClaimsToUserInfo reads the caller identity from the token claims.
func ClaimsToUserInfo(claims jwt.MapClaims) authapimodels.UserInfo {
	return authapimodels.UserInfo{
		ID:       claimString(claims, "sub"),
		Name:     claimString(claims, "name"),
		Role:     models.UserRole(claimString(claims, "role")),
		ClientID: claimString(claims, "client_id"),
	}
}

func claimString(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)
	return value
}
