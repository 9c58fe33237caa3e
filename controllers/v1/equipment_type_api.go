package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"komreq-backend/controllers"
	equipmenttypehandler "komreq-backend/lib/equipment-type"
	"komreq-backend/middleware"
	apimodels "komreq-backend/models/api"
	equipmenttypeapimodels "komreq-backend/models/api/equipment-type"
)

type equipmentTypeApiController struct {
	controllers.BaseAPIController
}

func InitEquipmentTypeApiRouters(app *fiber.App) {
	controller := equipmentTypeApiController{}
	app.Route("equipmenttype", func(router fiber.Router) {
		router.Get("", controller.listActive)
		router.Get("all", controller.listAll)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Список активных
// @Tags Тип оборудования
// @Description Активные типы оборудования для выбора в заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]equipmenttypeapimodels.EquipmentTypeShortView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/equipmenttype [get]
func (c *equipmentTypeApiController) listActive(ctx *fiber.Ctx) error {
	resp, err := equipmenttypehandler.Instance.ListActive()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка типов оборудования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Полный список
// @Tags Тип оборудования
// @Description Все типы оборудования, включая неактивные
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]equipmenttypeapimodels.EquipmentTypeView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/equipmenttype/all [get]
func (c *equipmentTypeApiController) listAll(ctx *fiber.Ctx) error {
	resp, err := equipmenttypehandler.Instance.ListAll()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка типов оборудования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получение по ИД
// @Tags Тип оборудования
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=equipmenttypeapimodels.EquipmentTypeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/equipmenttype/{id} [get]
func (c *equipmentTypeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := equipmenttypehandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения типа оборудования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание
// @Tags Тип оборудования
// @Description Создание
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 equipmenttypeapimodels.EquipmentTypeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=uint}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/equipmenttype [post]
func (c *equipmentTypeApiController) create(ctx *fiber.Ctx) error {
	var payload equipmenttypeapimodels.EquipmentTypeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := equipmenttypehandler.Instance.Create(middleware.GetCaller(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания типа оборудования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление
// @Tags Тип оборудования
// @Description Обновление
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 equipmenttypeapimodels.EquipmentTypeUpdateData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/equipmenttype/{id} [put]
func (c *equipmentTypeApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload equipmenttypeapimodels.EquipmentTypeUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = equipmenttypehandler.Instance.Update(middleware.GetCaller(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения типа оборудования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Удаление
// @Tags Тип оборудования
// @Description Деактивация типа оборудования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/equipmenttype/{id} [delete]
func (c *equipmentTypeApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = equipmenttypehandler.Instance.Delete(middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления типа оборудования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
