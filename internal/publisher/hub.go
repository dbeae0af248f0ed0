package publisher

import (
	"context"
	"dice_game/internal/model"
	"log"
	"sync"
	"time"
)

// subscriberBuffer Сколько событий может отстать медленный зритель, прежде чем события начнут теряться
const subscriberBuffer = 16

type subscriber struct {
	ch chan []byte
}

// Hub Раздает события партии подключенным зрителям (WebSocket) внутри процесса
type Hub struct {
	mtx    sync.Mutex
	subs   map[string]map[*subscriber]struct{}
	closed bool
	clock  func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		subs:  make(map[string]map[*subscriber]struct{}),
		clock: time.Now,
	}
}

// Subscribe Подписка на события партии. Канал закрывается после cancel или Close
func (h *Hub) Subscribe(gameID string) (<-chan []byte, func()) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	sub := &subscriber{ch: make(chan []byte, subscriberBuffer)}
	if h.closed {
		close(sub.ch)
		return sub.ch, func() {}
	}

	if h.subs[gameID] == nil {
		h.subs[gameID] = make(map[*subscriber]struct{})
	}
	h.subs[gameID][sub] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mtx.Lock()
			defer h.mtx.Unlock()
			h.remove(gameID, sub)
		})
	}
	return sub.ch, cancel
}

func (h *Hub) PublishRoll(_ context.Context, gameID string, outcome model.RollOutcome) error {
	return h.broadcast(rollEvent(gameID, outcome))
}

func (h *Hub) PublishGameEnded(_ context.Context, gameID string, result model.GameResult) error {
	return h.broadcast(resultEvent(gameID, result))
}

// Close Закрывает все подписки
func (h *Hub) Close() error {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	for gameID, subs := range h.subs {
		for sub := range subs {
			h.remove(gameID, sub)
		}
	}
	h.closed = true
	return nil
}

// CloseGame Закрывает все подписки партии, например после ее удаления
func (h *Hub) CloseGame(gameID string) {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	for sub := range h.subs[gameID] {
		h.remove(gameID, sub)
	}
}

// Subscribers Число зрителей партии
func (h *Hub) Subscribers(gameID string) int {
	h.mtx.Lock()
	defer h.mtx.Unlock()
	return len(h.subs[gameID])
}

func (h *Hub) broadcast(evt event) error {
	h.mtx.Lock()
	defer h.mtx.Unlock()

	subs := h.subs[evt.GameID]
	if len(subs) == 0 {
		return nil
	}

	value, err := encode(evt, h.clock())
	if err != nil {
		return err
	}

	for sub := range subs {
		select {
		case sub.ch <- value:
		default:
			log.Printf("[game %s] watcher is too slow, %s event dropped", evt.GameID, evt.Type)
		}
	}
	return nil
}

// remove Вызывается под h.mtx
func (h *Hub) remove(gameID string, sub *subscriber) {
	subs, ok := h.subs[gameID]
	if !ok {
		return
	}
	if _, ok := subs[sub]; !ok {
		return
	}
	delete(subs, sub)
	close(sub.ch)
	if len(subs) == 0 {
		delete(h.subs, gameID)
	}
}
