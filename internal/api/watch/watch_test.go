package watch

import (
	"context"
	"dice_game/internal/middleware"
	"dice_game/internal/model"
	"dice_game/internal/publisher"
	"dice_game/pkg/token"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var secret = []byte("watch-secret")

type stubGames struct {
	known string
}

func (s stubGames) Get(_ context.Context, id string) (*model.GameSnapshot, error) {
	if id != s.known {
		return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, id)
	}
	return &model.GameSnapshot{ID: id}, nil
}

func newServer(t *testing.T, hub *publisher.Hub) *httptest.Server {
	t.Helper()
	h := NewHandler(HandlerDeps{Games: stubGames{known: "g1"}, Hub: hub})

	r := chi.NewRouter()
	r.Route("/games/{id}", func(rr chi.Router) {
		rr.Use(middleware.GameAuth(secret))
		rr.Get("/events", h.Events)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(t *testing.T, srv *httptest.Server, gameID string) string {
	t.Helper()
	accessToken, err := token.GenerateAccessToken(gameID, secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/games/" + gameID + "/events?token=" + accessToken
}

func waitSubscribers(t *testing.T, hub *publisher.Hub, gameID string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Subscribers(gameID) != want {
		if time.Now().After(deadline) {
			t.Fatalf("subscribers = %d, want %d", hub.Subscribers(gameID), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestEventsStreamsRolls(t *testing.T) {
	hub := publisher.NewHub()
	srv := newServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(t, srv, "g1"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitSubscribers(t, hub, "g1", 1)

	outcome := model.RollOutcome{
		Die1: 5, Die2: 2, Points: 7, Round: 1,
		Actor: model.PlayerAccount{Name: "Computer", Score: 7, RollCount: 1},
	}
	if err := hub.PublishRoll(context.Background(), "g1", outcome); err != nil {
		t.Fatalf("publish: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var got struct {
		Type   string `json:"type"`
		GameID string `json:"game_id"`
		Roll   struct {
			Player string `json:"player"`
			Points int    `json:"points"`
		} `json:"roll"`
	}
	if err := json.Unmarshal(msg, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Type != "roll" || got.GameID != "g1" || got.Roll.Player != "Computer" || got.Roll.Points != 7 {
		t.Fatalf("unexpected event %s", msg)
	}

	conn.Close()
	waitSubscribers(t, hub, "g1", 0)
}

func TestEventsUnknownGame(t *testing.T) {
	hub := publisher.NewHub()
	srv := newServer(t, hub)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(t, srv, "missing"), nil)
	if err == nil {
		t.Fatal("expected dial error")
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", resp)
	}
}

func TestEventsClosedOnHubClose(t *testing.T) {
	hub := publisher.NewHub()
	srv := newServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(t, srv, "g1"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitSubscribers(t, hub, "g1", 1)
	if err := hub.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Fatalf("expected going away close, got %v", err)
	}
}

func TestEventsClosedWhenGameIsClosed(t *testing.T) {
	hub := publisher.NewHub()
	srv := newServer(t, hub)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(t, srv, "g1"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	waitSubscribers(t, hub, "g1", 1)
	hub.CloseGame("g1")

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Fatalf("expected going away close, got %v", err)
	}
}
