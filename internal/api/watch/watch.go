package watch

import (
	"context"
	"dice_game/internal/middleware"
	"dice_game/internal/model"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

// GameFinder Проверка, что партия существует
type GameFinder interface {
	Get(ctx context.Context, id string) (*model.GameSnapshot, error)
}

// Subscriber Источник событий партии
type Subscriber interface {
	Subscribe(gameID string) (<-chan []byte, func())
}

type HandlerDeps struct {
	Games GameFinder
	Hub   Subscriber
}

type Handler struct {
	games    GameFinder
	hub      Subscriber
	upgrader websocket.Upgrader
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		games: deps.Games,
		hub:   deps.Hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Источники ограничивает CORS и токен партии
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Events Поток событий партии (броски и итог) через WebSocket.
// Бросок компьютера виден зрителю без опроса состояния
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.GameIDFromContext(r.Context())

	if _, err := h.games.Get(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrGameNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Println("watch error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту
		log.Println("websocket upgrade error:", err)
		return
	}
	defer conn.Close()

	events, cancel := h.hub.Subscribe(id)
	defer cancel()

	// Клиент ничего не шлет, чтение нужно только чтобы заметить закрытие
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "game stream closed"))
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("[game %s] websocket write error: %v", id, err)
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
