package middleware

import (
	authutils "ats-backend/lib/utils/auth-utils"
	"ats-backend/models"
	authapimodels "ats-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	return GetUserInfo(ctx).ID
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return GetUserInfo(ctx).Role
}

func GetUserInfo(ctx *fiber.Ctx) authapimodels.UserInfo {
	return authutils.ClaimsToUserInfo(authutils.GetClaims(ctx))
}
