package game

import "time"

type CreateGameRequest struct {
	TwoPlayer   *bool  `json:"two_player"`   // Режим двух игроков, по умолчанию из настроек
	MaxRounds   *int   `json:"max_rounds"`   // По умолчанию из настроек
	Player1Name string `json:"player1_name"` // Необязательно
	Player2Name string `json:"player2_name"` // Необязательно
}

type CreateGameResponse struct {
	GameID string       `json:"game_id"`
	Token  string       `json:"token"` // Bearer токен для запросов к партии
	State  GameResponse `json:"state"`
}

type GameResponse struct {
	GameID          string          `json:"game_id"`
	CreatedAt       time.Time       `json:"created_at"`
	State           string          `json:"state"` // awaiting_roll, computer_pending, ended
	TwoPlayer       bool            `json:"two_player"`
	MaxRounds       int             `json:"max_rounds"`
	CurrentRound    int             `json:"current_round"`
	RoundsCompleted int             `json:"rounds_completed"`
	Player1Turn     bool            `json:"player1_turn"`
	ComputerPending bool            `json:"computer_pending"`
	Ended           bool            `json:"ended"`
	Dice            [2]int          `json:"dice"` // Последние выпавшие грани
	Player1         PlayerResponse  `json:"player1"`
	Player2         PlayerResponse  `json:"player2"`
	Result          *ResultResponse `json:"result,omitempty"` // Только после окончания
}

type PlayerResponse struct {
	Name                   string  `json:"name"`
	Score                  int     `json:"score"`
	RollCount              int     `json:"roll_count"`
	DoublesCount           int     `json:"doubles_count"`
	HighestSingleRoll      int     `json:"highest_single_roll"`
	TotalPointsFromDoubles int     `json:"total_points_from_doubles"`
	AverageScore           float64 `json:"average_score"`
	DoublesPercentage      float64 `json:"doubles_percentage"`
	Summary                string  `json:"summary"`
}

type ResultResponse struct {
	Winner       string `json:"winner"` // player1, player2, tie
	Headline     string `json:"headline"`
	RoundsPlayed int    `json:"rounds_played"`
	Player1Score int    `json:"player1_score"`
	Player2Score int    `json:"player2_score"`
}

type RollResponse struct {
	Die1     int          `json:"die1"`
	Die2     int          `json:"die2"`
	Points   int          `json:"points"`
	IsDouble bool         `json:"is_double"`
	Player   string       `json:"player"` // Кто бросал
	Round    int          `json:"round"`
	Ended    bool         `json:"ended"`
	State    GameResponse `json:"state"`
}

type StatsResponse struct {
	GamesStarted      int     `json:"games_started"`
	GamesFinished     int     `json:"games_finished"`
	SinglePlayerGames int     `json:"single_player_games"`
	TwoPlayerGames    int     `json:"two_player_games"`
	TotalRolls        int     `json:"total_rolls"`
	TotalPoints       int     `json:"total_points"`
	DoubleRolls       int     `json:"double_rolls"`
	HighestRoll       int     `json:"highest_roll"`
	AveragePoints     float64 `json:"average_points"`
	Player1Wins       int     `json:"player1_wins"`
	Player2Wins       int     `json:"player2_wins"`
	Ties              int     `json:"ties"`
}
