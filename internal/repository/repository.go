package repository

import (
	"context"
	"dice_game/internal/model"
	sessionModel "dice_game/internal/repository/game_repo/model"
	statsModel "dice_game/internal/repository/stats_repo/model"
)

type GameRepository interface {
	Create(ctx context.Context, session *sessionModel.Session) error
	Get(ctx context.Context, id string) (*sessionModel.Session, error)
	Delete(ctx context.Context, id string) (*sessionModel.Session, error)
	List(ctx context.Context) []*sessionModel.Session
}

type StatsRepository interface {
	Stats() statsModel.GameStats
	RecordGameStarted(twoPlayer bool)
	RecordRoll(outcome model.RollOutcome)
	RecordGameEnded(result model.GameResult)
}

// OutcomePublisher Публикация событий игры во внешний поток
type OutcomePublisher interface {
	PublishRoll(ctx context.Context, gameID string, outcome model.RollOutcome) error
	PublishGameEnded(ctx context.Context, gameID string, result model.GameResult) error
	Close() error
}

// GameCloser Публикатор с подписками на отдельные партии
type GameCloser interface {
	CloseGame(gameID string)
}
