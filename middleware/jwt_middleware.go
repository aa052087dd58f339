package middleware

import (
	"ats-backend/config"
	apimodels "ats-backend/models/api"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// AuthorizationRequired accepts a bearer token in the Authorization header,
// or in the token query parameter for websocket clients that cannot set headers.
func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims:      jwt.MapClaims{},
		TokenLookup: "header:Authorization,query:token",
		AuthScheme:  "Bearer",
		SigningKey: jwtware.SigningKey{
			JWTAlg: jwtware.HS256,
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
		ErrorHandler: authError,
	})
}

func authError(ctx *fiber.Ctx, err error) error {
	msg := "invalid or expired token"
	if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
		msg = "authorization token is required"
	}
	return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(msg))
}
