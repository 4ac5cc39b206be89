package httpapi

import (
	"context"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a frame to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong from the peer.
	pongWait = 60 * time.Second

	// Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Clients only send control frames.
	maxInboundMessageSize = 512
)

const (
	eventTypeSelectionState = "selection.state"
	eventTypeIntakeState    = "intake.state"
)

type eventFrame struct {
	Type         string    `json:"type"`
	SubscriberID string    `json:"subscriber_id"`
	Sequence     uint64    `json:"sequence"`
	Timestamp    time.Time `json:"timestamp"`
	Payload      any       `json:"payload"`
}

func (h *Handler) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || h.origins.allows(origin)
		},
	}
}

// StreamSessionEvents pushes every selection and intake state change to the
// client. Each subscription starts with the current snapshot of both.
func (h *Handler) StreamSessionEvents(w http.ResponseWriter, r *http.Request) {
	upgrader := h.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WarnContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	subscriberID := uuid.NewString()
	logger := h.logger.With("subscriber_id", subscriberID)

	selectionCh, unsubscribeSelection, err := h.selection.Subscribe(ctx)
	if err != nil {
		logger.WarnContext(ctx, "subscribe selection failed", "error", err)
		closeWithReason(conn, websocket.CloseTryAgainLater, "selection unavailable")
		return
	}
	defer unsubscribeSelection()

	intakeCh, unsubscribeIntake, err := h.intake.Subscribe(ctx)
	if err != nil {
		logger.WarnContext(ctx, "subscribe intake failed", "error", err)
		closeWithReason(conn, websocket.CloseTryAgainLater, "intake unavailable")
		return
	}
	defer unsubscribeIntake()

	logger.InfoContext(ctx, "event stream opened")
	defer logger.InfoContext(ctx, "event stream closed")

	go readPump(conn, cancel)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	var sequence uint64
	send := func(eventType string, payload any) error {
		sequence++
		body, err := sonic.Marshal(eventFrame{
			Type:         eventType,
			SubscriberID: subscriberID,
			Sequence:     sequence,
			Timestamp:    time.Now().UTC(),
			Payload:      payload,
		})
		if err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteMessage(websocket.TextMessage, body)
	}

	for {
		select {
		case <-ctx.Done():
			closeWithReason(conn, websocket.CloseNormalClosure, "")
			return
		case state, ok := <-selectionCh:
			if !ok {
				closeWithReason(conn, websocket.CloseGoingAway, "selection stopped")
				return
			}
			if err := send(eventTypeSelectionState, toSelectionStateDTO(state)); err != nil {
				logger.DebugContext(ctx, "event write failed", "error", err)
				return
			}
		case state, ok := <-intakeCh:
			if !ok {
				closeWithReason(conn, websocket.CloseGoingAway, "intake stopped")
				return
			}
			if err := send(eventTypeIntakeState, toIntakeStateDTO(state, h.intake.MaxBytes())); err != nil {
				logger.DebugContext(ctx, "event write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains control frames and cancels the stream once the peer goes
// away.
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(maxInboundMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func closeWithReason(conn *websocket.Conn, code int, reason string) {
	_ = conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeWait),
	)
}
