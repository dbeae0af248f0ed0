package engine

import (
	"dice_game/internal/model"
)

// Winner - сравнение счетов после окончания игры. Строго больший счет побеждает, равный - ничья.
// Без побочных эффектов, можно вызывать повторно
func (e *Engine) Winner() (model.Winner, error) {
	if !e.ended {
		return 0, model.ErrGameNotEnded
	}
	return compare(*e.player1, *e.player2), nil
}

// Result - итоги завершенной партии для экрана результатов
func (e *Engine) Result() (model.GameResult, error) {
	winner, err := e.Winner()
	if err != nil {
		return model.GameResult{}, err
	}
	return model.GameResult{
		Winner:        winner,
		Player1:       *e.player1,
		Player2:       *e.player2,
		RoundsPlayed:  e.cfg.MaxRounds(),
		TwoPlayerMode: e.cfg.IsTwoPlayerMode(),
	}, nil
}

func compare(p1, p2 model.PlayerAccount) model.Winner {
	switch {
	case p1.HasWonAgainst(p2):
		return model.WinnerPlayer1
	case p2.HasWonAgainst(p1):
		return model.WinnerPlayer2
	default:
		return model.WinnerTie
	}
}
