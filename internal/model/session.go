package model

import "time"

// NewGame Параметры создания партии. Нулевые значения заменяются настройками по умолчанию
type NewGame struct {
	TwoPlayer   *bool
	MaxRounds   *int
	Player1Name string
	Player2Name string
}

// GameSnapshot Состояние партии для отображения хостом
type GameSnapshot struct {
	ID              string
	CreatedAt       time.Time
	State           TurnState
	TwoPlayer       bool
	MaxRounds       int
	CurrentRound    int
	RoundsCompleted int
	Player1Turn     bool
	ComputerPending bool
	Ended           bool
	Die1            int
	Die2            int
	Player1         PlayerAccount
	Player2         PlayerAccount
	Result          *GameResult // Только для завершенной партии
}

// CreatedGame Новая партия и токен ее хоста
type CreatedGame struct {
	Game  GameSnapshot
	Token string
}

// RollResult Результат броска и состояние партии после него
type RollResult struct {
	Outcome RollOutcome
	Game    GameSnapshot
}
