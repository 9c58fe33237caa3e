package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"komreq-backend/controllers"
	auditloghandler "komreq-backend/lib/audit-log"
	apimodels "komreq-backend/models/api"
	auditlogapimodels "komreq-backend/models/api/audit-log"
)

type auditLogApiController struct {
	controllers.BaseAPIController
}

func InitAuditLogApiRouters(app *fiber.App) {
	controller := auditLogApiController{}
	app.Route("auditlog", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
	})
}

// @Summary Журнал аудита
// @Tags Аудит
// @Description Журнал аудита, новые записи первыми
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	filter	query	auditlogapimodels.AuditLogFilter	false	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]auditlogapimodels.AuditLogView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auditlog [get]
func (c *auditLogApiController) list(ctx *fiber.Ctx) error {
	var filter auditlogapimodels.AuditLogFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := auditloghandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения журнала аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Запись журнала аудита
// @Tags Аудит
// @Description Запись журнала аудита
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=auditlogapimodels.AuditLogView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auditlog/{id} [get]
func (c *auditLogApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := auditloghandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения записи журнала аудита")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
