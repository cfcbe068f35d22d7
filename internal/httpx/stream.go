package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/smarthub/hubfare/internal/service"
)

// streamParams reads /{from}/{to}?date=DD/MM/YYYY.
func streamParams(w http.ResponseWriter, r *http.Request, prefix string) (from, to, date string, ok bool) {
	from = service.NormalizeCode(r.PathValue("from"))
	to = service.NormalizeCode(r.PathValue("to"))
	date = r.URL.Query().Get("date")
	if from == "" || to == "" || date == "" {
		writeError(w, http.StatusBadRequest, "use "+prefix+"/{from}/{to}?date=DD/MM/YYYY")
		return "", "", "", false
	}
	return from, to, date, true
}

// SubscribeSSEHandler pushes a fresh dated search every interval.
func SubscribeSSEHandler(b *service.Bridge, interval time.Duration, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, date, ok := streamParams(w, r, "/api/sse")
		if !ok {
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			writeError(w, http.StatusInternalServerError, "streaming unsupported")
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			payload, err := json.Marshal(b.FetchOrSimulate(ctx, from, to, date))
			if err != nil {
				fmt.Fprintf(w, "event: error\ndata: %q\n\n", err.Error())
				flusher.Flush()
				return
			}
			fmt.Fprintf(w, "event: update\ndata: %s\n\n", payload)
			flusher.Flush()

			select {
			case <-ctx.Done():
				log.Debug("sse client closed", zap.String("from", from), zap.String("to", to))
				return
			case <-ticker.C:
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SubscribeWSHandler is the websocket twin of SubscribeSSEHandler.
func SubscribeWSHandler(b *service.Bridge, interval time.Duration, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from, to, date, ok := streamParams(w, r, "/api/ws")
		if !ok {
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn("websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			if err := conn.WriteJSON(b.FetchOrSimulate(ctx, from, to, date)); err != nil {
				log.Debug("websocket write failed", zap.Error(err))
				return
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}
}
