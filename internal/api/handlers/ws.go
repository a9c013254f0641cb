package handlers

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"geoconv-service/internal/api/dto"
)

const (
	wsMaxMessageBytes = 64 << 10
	wsWriteWait       = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// Live converts each text frame as a convert request and replies with the
// convert response, so a client can convert while the user types.
func (h *ConvertHandler) Live(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		h.Logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsMaxMessageBytes)

	for {
		msgType, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.Logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var res dto.ConvertResponse
		var req dto.ConvertRequest
		if err := decodeOne(bytes.NewReader(msg), &req); err != nil {
			res = dto.ConvertResponse{Error: "invalid json body"}
		} else {
			res = h.run(r.Context(), req)
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(res); err != nil {
			h.Logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}
