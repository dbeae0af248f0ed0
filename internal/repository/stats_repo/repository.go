package stats_repo

import (
	gameModel "dice_game/internal/model"
	repoModel "dice_game/internal/repository/stats_repo/model"
	"sync"
)

// StatsRepo Хранилище сводной статистики в памяти процесса
type StatsRepo struct {
	mtx   sync.RWMutex
	state repoModel.GameStats
}

// NewStatsRepository Конструктор репозитория с пустой статистикой
func NewStatsRepository() *StatsRepo {
	return &StatsRepo{}
}

// Stats Получение копии текущей статистики
func (r *StatsRepo) Stats() repoModel.GameStats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.state
}

// RecordGameStarted Учет новой партии (или перезапуска существующей)
func (r *StatsRepo) RecordGameStarted(twoPlayer bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.GamesStarted++
	if twoPlayer {
		r.state.TwoPlayerGames++
	} else {
		r.state.SinglePlayerGames++
	}
}

// RecordRoll Обновление статистики после броска
func (r *StatsRepo) RecordRoll(outcome gameModel.RollOutcome) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalRolls++
	r.state.TotalPoints += outcome.Points
	if outcome.IsDouble {
		r.state.DoubleRolls++
	}
	if outcome.Points > r.state.HighestRoll {
		r.state.HighestRoll = outcome.Points
	}

	// Пересчитываем средний бросок
	r.state.AveragePoints = float64(r.state.TotalPoints) / float64(r.state.TotalRolls)
}

// RecordGameEnded Учет завершенной партии
func (r *StatsRepo) RecordGameEnded(result gameModel.GameResult) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.GamesFinished++
	switch result.Winner {
	case gameModel.WinnerPlayer1:
		r.state.Player1Wins++
	case gameModel.WinnerPlayer2:
		r.state.Player2Wins++
	default:
		r.state.Ties++
	}
}
