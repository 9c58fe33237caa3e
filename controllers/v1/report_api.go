package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"komreq-backend/controllers"
	reporthandler "komreq-backend/lib/report"
	statusstatistichandler "komreq-backend/lib/status-statistic"
	"komreq-backend/middleware"
	apimodels "komreq-backend/models/api"
	reportapimodels "komreq-backend/models/api/report"
	requestapimodels "komreq-backend/models/api/request"
	statisticapimodels "komreq-backend/models/api/statistic"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("report", func(router fiber.Router) {
		router.Get("requests-pdf", controller.requestsPdf)
		router.Get("requests-excel", controller.requestsExcel)
		router.Get("history", controller.history)
	})
	app.Route("statistic", func(router fiber.Router) {
		router.Get("status", controller.statusStatistic)
	})
}

// @Summary Отчет PDF
// @Tags Отчеты
// @Description Список заявок в PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	filter	query	requestapimodels.RequestFilter	false	"filter"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/requests-pdf [get]
func (c *reportApiController) requestsPdf(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := reporthandler.Instance.RequestsPdf(ctx.UserContext(), middleware.GetCaller(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчета PDF")
	}
	return sendReport(ctx, file)
}

// @Summary Отчет Excel
// @Tags Отчеты
// @Description Список заявок в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	filter	query	requestapimodels.RequestFilter	false	"filter"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/requests-excel [get]
func (c *reportApiController) requestsExcel(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := reporthandler.Instance.RequestsExcel(ctx.UserContext(), middleware.GetCaller(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования отчета Excel")
	}
	return sendReport(ctx, file)
}

// @Summary Сформированные отчеты
// @Tags Отчеты
// @Description Реестр сформированных отчетов
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]reportapimodels.ReportView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/history [get]
func (c *reportApiController) history(ctx *fiber.Ctx) error {
	resp, err := reporthandler.Instance.History(middleware.GetCaller(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка отчетов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Статистика по статусам
// @Tags Отчеты
// @Description Количество заявок по статусам за день
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	filter	query	statisticapimodels.StatisticFilter	false	"filter"
// @Success 200 {object} apimodels.Response{data=[]statisticapimodels.StatusStatisticView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/statistic/status [get]
func (c *reportApiController) statusStatistic(ctx *fiber.Ctx) error {
	var filter statisticapimodels.StatisticFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := statusstatistichandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения статистики")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

func sendReport(ctx *fiber.Ctx, file reportapimodels.ReportFile) error {
	ctx.Set(fiber.HeaderContentType, file.ContentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.FileName+`"`)
	return ctx.Send(file.Body)
}
