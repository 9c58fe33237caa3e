package wsclient

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

// PongWait сколько ждать pong, сессия шлет ping чаще
const PongWait = 60 * time.Second

func NewClient(userID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
	}
}

type WsClient struct {
	conn   *websocket.Conn
	userID string
}

var closeCodes []int

func init() {
	for i := websocket.CloseNormalClosure; i <= websocket.CloseTLSHandshake; i++ {
		closeCodes = append(closeCodes, i)
	}
}

// Dispatch читает соединение до закрытия или истечения PongWait, входящие сообщения клиента не обрабатываются
func (c *WsClient) Dispatch() {
	if c.conn == nil {
		return
	}
	logger := log.WithField("user_id", c.userID)
	extend := func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(PongWait))
	}
	if err := extend(""); err != nil {
		logger.WithError(err).Warn("не удалось установить таймаут чтения ws")
	}
	c.conn.SetPongHandler(extend)
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, closeCodes...) {
				logger.WithError(err).Info("ws соединение закрыто")
			}
			return
		}
		_ = extend("")
		logger.WithField("ws_message", string(data)).Debug("ws-msg")
	}
}
