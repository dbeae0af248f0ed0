package service

import (
	"context"
	"dice_game/internal/model"
	statsModel "dice_game/internal/repository/stats_repo/model"
)

type GameService interface {
	Create(ctx context.Context, req model.NewGame) (*model.CreatedGame, error)
	Get(ctx context.Context, id string) (*model.GameSnapshot, error)
	Roll(ctx context.Context, id string) (*model.RollResult, error)
	NewGame(ctx context.Context, id string) (*model.GameSnapshot, error)
	SwitchMode(ctx context.Context, id string) (*model.GameSnapshot, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) statsModel.GameStats
	Close() error
}
