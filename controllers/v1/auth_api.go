package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"komreq-backend/controllers"
	usershandler "komreq-backend/lib/users"
	"komreq-backend/middleware"
	apimodels "komreq-backend/models/api"
	usersapimodels "komreq-backend/models/api/users"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("register", controller.register)
		router.Post("login", controller.login)

		router.Use(middleware.AuthorizationRequired(), middleware.RbacMiddleware())
		router.Get("me", controller.me)
		router.Get("users", controller.users)
		router.Post("create-user", controller.createUser)
		router.Delete("delete-user/:id", controller.deleteUser)
		router.Post("change-role", controller.changeRole)
	})
}

// @Summary Регистрация клиента
// @Tags Аутентификация пользователей
// @Description Самостоятельная регистрация, пользователь получает роль Client
// @Param	body				body		usersapimodels.RegisterRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/register [post]
func (c *authApiController) register(ctx *fiber.Ctx) error {
	var payload usersapimodels.RegisterRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := usershandler.Instance.Register(payload, ctx.IP())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Аутентификация пользователя
// @Tags Аутентификация пользователей
// @Description Аутентификация пользователя
// @Param	body				body		usersapimodels.LoginRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=usersapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload usersapimodels.LoginRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.Login(payload, ctx.IP())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка аутентификации")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Получить информацию о текущем пользователе
// @Tags Аутентификация пользователей
// @Description Профиль и права текущего пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=usersapimodels.MeView}
// @Failure 401
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/me [get]
func (c *authApiController) me(ctx *fiber.Ctx) error {
	resp, err := usershandler.Instance.Me(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Список пользователей
// @Tags Пользователи
// @Description Список пользователей
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	filter	query	usersapimodels.UserFilter	false	"filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]usersapimodels.UserView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/users [get]
func (c *authApiController) users(ctx *fiber.Ctx) error {
	var filter usersapimodels.UserFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := usershandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пользователей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Создание пользователя
// @Tags Пользователи
// @Description Создание пользователя с ролью
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		usersapimodels.CreateUserRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/create-user [post]
func (c *authApiController) createUser(ctx *fiber.Ctx) error {
	var payload usersapimodels.CreateUserRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := usershandler.Instance.Create(middleware.GetCaller(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Деактивация пользователя
// @Tags Пользователи
// @Description Деактивация пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "user ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/delete-user/{id} [delete]
func (c *authApiController) deleteUser(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указан пользователь"))
	}
	err := usershandler.Instance.Deactivate(middleware.GetCaller(ctx), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка деактивации пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Смена роли
// @Tags Пользователи
// @Description Смена роли пользователя
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		usersapimodels.ChangeRoleRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/change-role [post]
func (c *authApiController) changeRole(ctx *fiber.Ctx) error {
	var payload usersapimodels.ChangeRoleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := usershandler.Instance.ChangeRole(middleware.GetCaller(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка смены роли пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
