package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"komreq-backend/controllers"
	notificationhandler "komreq-backend/lib/notification"
	"komreq-backend/middleware"
	apimodels "komreq-backend/models/api"
	notificationapimodels "komreq-backend/models/api/notification"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("mark-all-read", controller.markAllRead)
		router.Post(":id/mark-read", controller.markRead)
	})
}

// @Summary Мои уведомления
// @Tags Уведомления
// @Description Уведомления текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	filter	query	notificationapimodels.NotificationFilter	false	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	var filter notificationapimodels.NotificationFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := notificationhandler.Instance.List(middleware.GetUserID(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Прочитано
// @Tags Уведомления
// @Description Отметить уведомление прочитанным
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/{id}/mark-read [post]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = notificationhandler.Instance.MarkRead(middleware.GetUserID(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления уведомления")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Все прочитаны
// @Tags Уведомления
// @Description Отметить все уведомления прочитанными
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/mark-all-read [post]
func (c *notificationApiController) markAllRead(ctx *fiber.Ctx) error {
	err := notificationhandler.Instance.MarkAllRead(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления уведомлений")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
