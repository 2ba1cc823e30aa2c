package handlers

import (
	"net/http"
	"time"

	"github.com/sevakart/marketplace/pkg/auth"
	"github.com/sevakart/marketplace/pkg/errhttp"
	"github.com/sevakart/marketplace/pkg/httpx"
	appsvcs "github.com/sevakart/marketplace/services/order/application/services"
)

const streamHeartbeat = 25 * time.Second

// StreamHandler handles GET /orders/stream.
type StreamHandler struct {
	svc       *appsvcs.Services
	heartbeat time.Duration
}

func NewStreamHandler(svc *appsvcs.Services) *StreamHandler {
	return &StreamHandler{svc: svc, heartbeat: streamHeartbeat}
}

// Execute streams order notifications for the caller as Server-Sent Events.
// Each event's data is the order event JSON published by the worker.
//
//	@Summary		Order feed
//	@Description	Server-Sent Events: one "order" event per change to an order the caller is part of.
//	@Tags			orders
//	@Produce		text/event-stream
//	@Success		200
//	@Failure		503	{object}	ErrorResponse
//	@Router			/orders/stream [get]
func (h *StreamHandler) Execute(w http.ResponseWriter, r *http.Request) {
	accountID, err := auth.AccountIDFromCtx(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	if h.svc.Feed == nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "realtime feed unavailable")
		return
	}

	sub, err := h.svc.Feed.Subscribe(r.Context(), accountID)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	defer sub.Close()

	stream, err := httpx.NewEventStream(w)
	if err != nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "realtime feed unavailable")
		return
	}
	if err := stream.Comment("connected"); err != nil {
		return
	}

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()
	messages := sub.Channel()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := stream.Comment("ping"); err != nil {
				return
			}
		case msg, ok := <-messages:
			if !ok {
				return
			}
			if err := stream.Event("order", []byte(msg.Payload)); err != nil {
				return
			}
		}
	}
}
