package apiv1

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"komreq-backend/controllers"
	requesthandler "komreq-backend/lib/request"
	"komreq-backend/middleware"
	apimodels "komreq-backend/models/api"
	requestapimodels "komreq-backend/models/api/request"
)

type requestApiController struct {
	controllers.BaseAPIController
}

func InitRequestApiRouters(app *fiber.App) {
	controller := requestApiController{}
	app.Route("request", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("create", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("status", controller.changeStatus)
			idRoute.Post("assign", controller.assign)
			idRoute.Post("add-comment", controller.addComment)
			idRoute.Get("history", controller.history)
			idRoute.Route("files", func(filesRoute fiber.Router) {
				filesRoute.Get("", controller.listFiles)
				filesRoute.Post("", controller.uploadFile)
				filesRoute.Get(":fileId", controller.getFile)
			})
		})
	})
}

// @Summary Создание
// @Tags Заявка
// @Description Создание заявки на поставку оборудования
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=uint}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/create [post]
func (c *requestApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := requesthandler.Instance.Create(middleware.GetCaller(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Обновление
// @Tags Заявка
// @Description Обновление деталей заявки, доступно менеджеру заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestUpdateData	true	"request body"
// @Param   id          		path    int  				    	true         "request ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id} [put]
func (c *requestApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.RequestUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = requesthandler.Instance.Update(middleware.GetCaller(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена статуса
// @Tags Заявка
// @Description Смена статуса заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.ChangeStatusData	true	"request body"
// @Param   id          		path    int  				    	true         "request ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/status [put]
func (c *requestApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.ChangeStatusData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = requesthandler.Instance.ChangeStatus(middleware.GetCaller(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены статуса заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Назначение сотрудника
// @Tags Заявка
// @Description Назначение менеджера или техника на заявку
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.AssignData	true	"request body"
// @Param   id          		path    int  				    	true         "request ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/assign [post]
func (c *requestApiController) assign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.AssignData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = requesthandler.Instance.AssignUser(middleware.GetCaller(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка назначения сотрудника на заявку")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Комментарий
// @Tags Заявка
// @Description Добавить комментарий к заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.CommentData	true	"request body"
// @Param   id          		path    int  				    	true         "request ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/add-comment [post]
func (c *requestApiController) addComment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload requestapimodels.CommentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = requesthandler.Instance.AddComment(middleware.GetCaller(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка добавления комментария")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Получение по ИД
// @Tags Заявка
// @Description Получение заявки, состав полей зависит от роли
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.StaffRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id} [get]
func (c *requestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := requesthandler.Instance.Get(middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список
// @Tags Заявка
// @Description Список видимых пользователю заявок
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	filter	query	requestapimodels.RequestFilter	false	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.StaffRequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request [get]
func (c *requestApiController) list(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := requesthandler.Instance.List(middleware.GetCaller(ctx), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary История
// @Tags Заявка
// @Description История изменений заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.StaffHistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/history [get]
func (c *requestApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := requesthandler.Instance.History(middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения истории заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Заявка
// @Description Удаление (деактивация) заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "request ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id} [delete]
func (c *requestApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	err = requesthandler.Instance.Delete(middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Загрузить файл
// @Tags Заявка
// @Description Загрузить файл к заявке
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "request ID"
// @Param   file				formData	file 	true 	"Файл"
// @Param   description			formData	string 	false 	"Описание"
// @Param   is_confidential		formData	bool 	false 	"Конфиденциальный"
// @Success 200 {object} apimodels.Response{data=uint}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/files [post]
func (c *requestApiController) uploadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("файл не загружен"))
	}
	buffer, err := file.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при получении файла")
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка при загрузке файла")
	}

	confidential, _ := strconv.ParseBool(ctx.FormValue("is_confidential"))
	payload := requestapimodels.UploadFileData{
		FileName:       file.Filename,
		ContentType:    file.Header.Get(fiber.HeaderContentType),
		Body:           fileBody,
		Description:    ctx.FormValue("description"),
		IsConfidential: confidential,
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileID, err := requesthandler.Instance.UploadFile(ctx.UserContext(), middleware.GetCaller(ctx), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка сохранения файла заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fileID))
}

// @Summary Список файлов
// @Tags Заявка
// @Description Список файлов заявки, конфиденциальные видны только сотрудникам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.FileView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/files [get]
func (c *requestApiController) listFiles(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resp, err := requesthandler.Instance.ListFiles(middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка файлов заявки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Скачать файл
// @Tags Заявка
// @Description Скачать файл заявки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "request ID"
// @Param   fileId         		path    int  				    	true         "file ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/request/{id}/files/{fileId} [get]
func (c *requestApiController) getFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileID, err := c.GetUintParam(ctx, "fileId")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	body, file, err := requesthandler.Instance.GetFile(ctx.UserContext(), middleware.GetCaller(ctx), id, fileID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения файла заявки")
	}
	if file.FileType != "" {
		ctx.Set(fiber.HeaderContentType, file.FileType)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+file.FileName+`"`)
	return ctx.Send(body)
}
