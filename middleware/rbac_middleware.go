package middleware

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"komreq-backend/lib/rbac"
	apimodels "komreq-backend/models/api"
)

const rbacForbiddenMsg = "недостаточно прав для выполнения операции"

// RbacMiddleware проверка доступа к роуту по ролям токена, роуты без правила пропускаются
func RbacMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		userRoles := GetUserRoles(ctx)
		if userID == "" || len(userRoles) == 0 {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(rbacForbiddenMsg))
		}

		handler, found := rbac.Instance.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}
		if !handler(userID, userRoles, ctx.Path()) {
			log.WithFields(log.Fields{
				"user_id": userID,
				"roles":   userRoles,
				"method":  ctx.Method(),
				"path":    ctx.Path(),
			}).Info("доступ запрещен")
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError(rbacForbiddenMsg))
		}
		return ctx.Next()
	}
}
