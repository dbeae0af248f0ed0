package publisher

import (
	"dice_game/internal/model"
	"encoding/json"
	"fmt"
	"time"
)

const (
	eventRoll      = "roll"
	eventGameEnded = "game_ended"
)

type event struct {
	Type      string    `json:"type"`
	GameID    string    `json:"game_id"`
	Timestamp time.Time `json:"timestamp"`

	Roll   *rollPayload   `json:"roll,omitempty"`
	Result *resultPayload `json:"result,omitempty"`
}

type rollPayload struct {
	Round    int    `json:"round"`
	Player   string `json:"player"`
	Die1     int    `json:"die1"`
	Die2     int    `json:"die2"`
	Points   int    `json:"points"`
	IsDouble bool   `json:"is_double"`
	Score    int    `json:"score"`
	Ended    bool   `json:"ended"`
}

type resultPayload struct {
	Winner       string `json:"winner"`
	Player1      string `json:"player1"`
	Player1Score int    `json:"player1_score"`
	Player2      string `json:"player2"`
	Player2Score int    `json:"player2_score"`
	RoundsPlayed int    `json:"rounds_played"`
	TwoPlayer    bool   `json:"two_player"`
}

func rollEvent(gameID string, outcome model.RollOutcome) event {
	return event{
		Type:   eventRoll,
		GameID: gameID,
		Roll: &rollPayload{
			Round:    outcome.Round,
			Player:   outcome.Actor.Name,
			Die1:     outcome.Die1,
			Die2:     outcome.Die2,
			Points:   outcome.Points,
			IsDouble: outcome.IsDouble,
			Score:    outcome.Actor.Score,
			Ended:    outcome.Ended,
		},
	}
}

func resultEvent(gameID string, result model.GameResult) event {
	return event{
		Type:   eventGameEnded,
		GameID: gameID,
		Result: &resultPayload{
			Winner:       result.Winner.String(),
			Player1:      result.Player1.Name,
			Player1Score: result.Player1.Score,
			Player2:      result.Player2.Name,
			Player2Score: result.Player2.Score,
			RoundsPlayed: result.RoundsPlayed,
			TwoPlayer:    result.TwoPlayerMode,
		},
	}
}

func encode(evt event, now time.Time) ([]byte, error) {
	evt.Timestamp = now.UTC()
	value, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", evt.Type, err)
	}
	return value, nil
}
