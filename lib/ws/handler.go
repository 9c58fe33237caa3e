package ws

import (
	wsclient "komreq-backend/lib/ws/client"
	connectionhub "komreq-backend/lib/ws/hub/connection-hub"
	"komreq-backend/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func InitWs(app *fiber.App) {
	app.Route("ws", func(router fiber.Router) {
		router.Use(func(ctx *fiber.Ctx) error {
			if !websocket.IsWebSocketUpgrade(ctx) {
				return fiber.ErrUpgradeRequired
			}
			ctx.Locals("userID", middleware.GetUserID(ctx))
			return ctx.Next()
		})
		router.Get("", websocket.New(notificationHandler))
	})
}

// @Summary Уведомления по заявкам
// @Tags Websocket
// @Description Уведомления по заявкам в реальном времени. Токен передается в заголовке Authorization или параметре token
// @Param   Authorization		header		string		false		"Authorization token"
// @Param   token		query		string		false		"JWT"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 401
// @Failure 426
// @router /api/v1/ws [get]
func notificationHandler(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	if userID == "" {
		return
	}
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(userID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userID, c)
	}()
	client.Dispatch()
}
