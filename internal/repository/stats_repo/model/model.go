package model

// GameStats Сводная статистика всех партий за время жизни процесса
type GameStats struct {
	GamesStarted  int // Сколько партий создано (включая перезапуски)
	GamesFinished int // Сколько партий доиграно до конца

	SinglePlayerGames int
	TwoPlayerGames    int

	TotalRolls  int // Сколько всего бросков сделано
	TotalPoints int // Сумма очков всех бросков
	DoubleRolls int // Броски с совпавшими гранями
	HighestRoll int // Лучший одиночный бросок

	Player1Wins int
	Player2Wins int
	Ties        int

	AveragePoints float64 // TotalPoints / TotalRolls
}
