package handlers

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"t9dict/internal/app/adapters/metrics"
	"t9dict/internal/app/domain/dictionary"
	"t9dict/pkg/logger"
	"time"
)

const (
	wsReadLimit = 512
	wsIdle      = 2 * time.Minute
	wsWrite     = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type keypadMessage struct {
	Session string `json:"session"`
	dictionary.SessionState
	Error string `json:"error,omitempty"`
}

// KeypadHandler upgrades to a websocket. Every text frame is a run of key
// presses; the session state is sent back after each frame.
func (h *Handlers) KeypadHandler(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("Websocket upgrade failed", "error", err.Error())
		return
	}
	defer ws.Close()

	id := uuid.NewString()
	log := logger.NewPrefixedLogger(h.log, "keypad", "session", id)
	session := dictionary.NewSession(h.dict)

	metrics.KeypadSessions.Inc()
	defer metrics.KeypadSessions.Dec()
	log.Debug("Session opened", "remote", c.ClientIP())

	ws.SetReadLimit(wsReadLimit)
	for {
		_ = ws.SetReadDeadline(time.Now().Add(wsIdle))
		msgType, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("Session read failed", "error", err.Error())
			}
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}

		reply := keypadMessage{Session: id}
		for _, key := range data {
			if err := session.Press(key); err != nil {
				reply.Error = err.Error()
				break
			}
		}
		reply.SessionState = session.State()

		_ = ws.SetWriteDeadline(time.Now().Add(wsWrite))
		if err := ws.WriteJSON(reply); err != nil {
			if !errors.Is(err, websocket.ErrCloseSent) {
				log.Warn("Session write failed", "error", err.Error())
			}
			break
		}
	}

	log.Debug("Session closed")
}
