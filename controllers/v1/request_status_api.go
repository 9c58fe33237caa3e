package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"komreq-backend/controllers"
	requeststatushandler "komreq-backend/lib/request-status"
	apimodels "komreq-backend/models/api"
)

type requestStatusApiController struct {
	controllers.BaseAPIController
}

func InitRequestStatusApiRouters(app *fiber.App) {
	controller := requestStatusApiController{}
	app.Route("requeststatus", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// @Summary Статусы заявок
// @Tags Справочники
// @Description Справочник статусов в порядке прохождения
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]statisticapimodels.RequestStatusView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/requeststatus [get]
func (c *requestStatusApiController) list(ctx *fiber.Ctx) error {
	resp, err := requeststatushandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения справочника статусов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
