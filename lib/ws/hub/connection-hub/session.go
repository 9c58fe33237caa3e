package connectionhub

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
	wsmodels "komreq-backend/models/ws"
)

const (
	sendBufferSize = 16
	recentIDsSize  = 256
	pingPeriod     = 45 * time.Second
	writeWait      = 10 * time.Second
)

type clientSession struct {
	conn *websocket.Conn

	// Outbound mesages, buffered.
	sendCh chan any
	done   <-chan struct{}
	stop   func()
	// уведомления, уже поставленные в очередь этой сессии
	queued *recentIDs
}

// recentIDs последние recentIDsSize идентификаторов уведомлений
type recentIDs struct {
	mu    sync.Mutex
	index map[uint]struct{}
	ring  []uint
	next  int
}

func newRecentIDs(size int) *recentIDs {
	return &recentIDs{index: make(map[uint]struct{}, size), ring: make([]uint, size)}
}

// add false, если id уже был добавлен
func (r *recentIDs) add(id uint) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[id]; ok {
		return false
	}
	if old := r.ring[r.next]; old != 0 {
		delete(r.index, old)
	}
	r.ring[r.next] = id
	r.next = (r.next + 1) % len(r.ring)
	r.index[id] = struct{}{}
	return true
}

func (r *recentIDs) remove(id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.index, id)
}

func newSession(conn *websocket.Conn) clientSession {
	ctx, cancelFn := context.WithCancel(context.Background())
	once := &sync.Once{}
	sess := clientSession{
		conn:   conn,
		sendCh: make(chan any, sendBufferSize),
		done:   ctx.Done(),
		stop:   func() { once.Do(cancelFn) },
		queued: newRecentIDs(recentIDsSize),
	}
	go sess.startSend(ctx)
	return sess
}

// enqueue уведомление с тем же NotificationID повторно не отправляется
func (s clientSession) enqueue(msg wsmodels.ServerMessage) bool {
	if msg.NotificationID != 0 && !s.queued.add(msg.NotificationID) {
		return true
	}
	select {
	case <-s.done:
	case s.sendCh <- msg:
		return true
	default:
		log.Warn("очередь отправки ws заполнена, сообщение отложено")
	}
	if msg.NotificationID != 0 {
		s.queued.remove(msg.NotificationID)
	}
	return false
}

// startSend единственный писатель в соединение: сообщения и ping
func (s clientSession) startSend(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.close()
			return
		case <-ticker.C:
			if err := s.ping(); err != nil {
				log.WithError(err).Info("ping ws не отправлен")
			}
		case msg := <-s.sendCh:
			_, err := s.send(s.conn, msg)
			if err != nil {
				log.WithError(err).Error("ошибка отправки сообщения")
			}
		}
	}
}

func (s clientSession) ping() error {
	if s.conn == nil || s.conn.Conn == nil {
		return nil
	}
	return s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (s clientSession) send(conn *websocket.Conn, msg interface{}) (bool, error) {
	if conn == nil || conn.Conn == nil {
		return false, nil
	}
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return false, err
	}
	err := conn.WriteJSON(msg)
	if err != nil {
		return false, err
	}
	log.Debugf("отправлено сообщение: %+v", msg)
	return true, nil
}

func (s clientSession) close() {
	if s.conn == nil || s.conn.Conn == nil {
		return
	}
	err := s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Millisecond))
	if err != nil {
		log.WithError(err).Debug("cant close")
	}
}
