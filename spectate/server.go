package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS conecta um espectador. O que ele mandar é lido e descartado;
// a leitura só existe para perceber quando a conexão cai.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("error to upgrade to websocket", "error", err)
		return
	}

	c := newClient(ws)
	if err := h.enqueue(hubEvent{Type: EventJoin, Client: c}); err != nil {
		ws.Close()
		return
	}
	go c.writePump()

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			// Com o hub fechado o cliente já foi liberado no shutdown.
			if err := h.enqueue(hubEvent{Type: EventLeave, Client: c}); err != nil {
				slog.Debug("spectator left after hub closed", "id", c.id, "error", err)
			}
			return
		}
	}
}

func (h *Hub) handleState(w http.ResponseWriter, r *http.Request) {
	frame, ok := h.Latest()
	if !ok {
		http.Error(w, "no match running", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(frame); err != nil {
		slog.Error("error to encode state", "error", err)
	}
}

func (h *Hub) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{
		"status":     "ok",
		"match_id":   h.MatchID(),
		"spectators": h.Clients(),
	})
	if err != nil {
		slog.Error("error to encode health", "error", err)
	}
}

// Router monta as rotas do espectador.
func (h *Hub) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	r.Get("/state", h.handleState)
	r.Get("/ws", h.ServeWS)
	return r
}

// Serve roda o hub e o servidor HTTP até ctx acabar.
func Serve(ctx context.Context, addr string, h *Hub) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("error to shutdown spectator server", "error", err)
		}
	}()

	slog.Info("spectator server running at " + addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("spectator server on %s: %w", addr, err)
	}
	return nil
}
