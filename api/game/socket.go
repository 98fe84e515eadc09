package gameapi

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	socketWriteWait = 5 * time.Second
	socketMaxFrame  = 64
)

// socketError is sent back when a frame cannot be applied.
type socketError struct {
	Error string `json:"error"`
}

// play upgrades the request to a websocket. Every text frame is a direction
// and every reply is a MoveResponse, so a client can stream key presses.
func (gc *GameController) play(ctx *gin.Context) {
	id, ok := gameID(ctx)
	if !ok {
		return
	}

	if _, err := gc.sessions.State(id); err != nil {
		writeError(ctx, err)
		return
	}

	conn, err := gc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		gc.logger.Warning(fmt.Sprintf("upgrading game %s to a websocket: %s", id, err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(socketMaxFrame)
	gc.logger.Info(fmt.Sprintf("game %s connected over websocket", id))
	gc.serveSocket(id, conn)
}

func (gc *GameController) serveSocket(id uuid.UUID, conn *websocket.Conn) {
	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				gc.logger.Warning(fmt.Sprintf("reading from game %s socket: %s", id, err))
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var reply any
		resp, err := gc.applyMove(id, string(payload))
		if err != nil {
			_, message := errorStatus(err)
			reply = socketError{Error: message}
		} else {
			reply = resp
		}

		_ = conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			gc.logger.Warning(fmt.Sprintf("writing to game %s socket: %s", id, err))
			return
		}
	}
}
