package fanout

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"go.uber.org/zap"
)

// WebSocket upgrades authenticated HTTP requests into event sessions.
type WebSocket struct {
	Registry       *Registry
	Buffer         int
	WriteTimeout   time.Duration
	OriginPatterns []string
	Log            *zap.Logger
}

type readyFrame struct {
	Kind    string `json:"kind"`
	Session string `json:"session"`
}

// Serve runs one session for userID until the client leaves or the request ends.
func (ws *WebSocket) Serve(w http.ResponseWriter, r *http.Request, userID int64) {
	log := ws.Log
	if log == nil {
		log = zap.NewNop()
	}
	out, err := NewOutbox(userID, ws.Buffer)
	if err != nil {
		log.Error("open session", zap.Int64("user", userID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: ws.OriginPatterns})
	if err != nil {
		log.Debug("websocket accept", zap.Error(err))
		return
	}
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	ws.Registry.Add(out, TopicAnnouncements)
	defer func() {
		out.Close()
		ws.Registry.Remove(out)
	}()

	_ = wsjson.Write(ctx, conn, readyFrame{Kind: "ready", Session: out.ID()})

	// Clients only send close and ping frames; reading keeps those flowing.
	readErr := make(chan error, 1)
	go func() {
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				readErr <- err
				return
			}
		}
	}()

	timeout := ws.WriteTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	for {
		select {
		case <-ctx.Done():
			_ = conn.Close(websocket.StatusNormalClosure, "closed")
			return
		case <-readErr:
			_ = conn.Close(websocket.StatusNormalClosure, "closed")
			return
		case e := <-out.Events():
			wctx, cancelWrite := context.WithTimeout(ctx, timeout)
			err := wsjson.Write(wctx, conn, e)
			cancelWrite()
			if err != nil {
				log.Debug("websocket write", zap.String("session", out.ID()), zap.Error(err))
				_ = conn.Close(websocket.StatusPolicyViolation, "write_failed")
				return
			}
		}
	}
}
