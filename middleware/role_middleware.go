package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	authutils "komreq-backend/lib/utils/auth-utils"
	"komreq-backend/models"
)

func GetUserID(ctx *fiber.Ctx) string {
	return claimString(authutils.GetClaims(ctx), "sub")
}

func GetUserRoles(ctx *fiber.Ctx) []models.UserRole {
	return authutils.GetClaimsRoles(authutils.GetClaims(ctx))
}

// GetCaller пользователь запроса по данным токена
func GetCaller(ctx *fiber.Ctx) models.Caller {
	return CallerFromClaims(authutils.GetClaims(ctx), ctx.IP())
}

func CallerFromClaims(claims jwt.MapClaims, ip string) models.Caller {
	return models.Caller{
		UserID:   claimString(claims, "sub"),
		UserName: claimString(claims, "name"),
		Roles:    authutils.GetClaimsRoles(claims),
		IP:       ip,
	}
}

func claimString(claims jwt.MapClaims, key string) string {
	if value, exist := claims[key]; exist {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}
