package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/prepdeck/prepdeck/internal/chat"
)

// chatTurnTimeout bounds how long one tutor reply may take.
const chatTurnTimeout = 60 * time.Second

type chatInbound struct {
	Message string `json:"message"`
}

type chatOutbound struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// handleChat upgrades the connection and runs a tutor session over it. Each
// connection gets its own conversation memory; closing the socket forgets
// the conversation.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		slog.Warn("websocket accept failed", "error", err)
		return
	}
	defer conn.CloseNow()

	tutor := chat.NewTutor(s.ai)
	ctx := r.Context()

	for {
		var in chatInbound
		if err := wsjson.Read(ctx, conn, &in); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway ||
				errors.Is(err, context.Canceled) {
				return
			}
			slog.Debug("websocket read ended", "error", err)
			return
		}

		turnCtx, cancel := context.WithTimeout(ctx, chatTurnTimeout)
		reply, err := tutor.Ask(turnCtx, in.Message)
		cancel()

		out := chatOutbound{Reply: reply}
		if err != nil {
			if errors.Is(err, chat.ErrEmptyMessage) {
				out = chatOutbound{Error: "message is empty"}
			} else {
				slog.Error("tutor reply failed", "error", err)
				out = chatOutbound{Error: "tutor is unavailable, try again"}
			}
		}

		if err := wsjson.Write(ctx, conn, out); err != nil {
			slog.Debug("websocket write ended", "error", err)
			return
		}
	}
}
