package game

import (
	"context"
	"dice_game/internal/config"
	"dice_game/internal/repository"
	statsModel "dice_game/internal/repository/stats_repo/model"
	"dice_game/internal/service"
	"dice_game/internal/service/dice"
	"log"
)

type serv struct {
	gameCfg   config.GameConfig
	jwtCfg    config.JWTConfig
	repo      repository.GameRepository
	statsRepo repository.StatsRepository
	publisher repository.OutcomePublisher
	scheduler Scheduler

	// Источник случайности для каждой новой партии
	newSource func() dice.Source
}

// NewGameService Хост партий: хранит движки, планирует ходы компьютера, ведет статистику
func NewGameService(
	gameCfg config.GameConfig,
	jwtCfg config.JWTConfig,
	repo repository.GameRepository,
	statsRepo repository.StatsRepository,
	publisher repository.OutcomePublisher,
	scheduler Scheduler,
) service.GameService {
	return &serv{
		gameCfg:   gameCfg,
		jwtCfg:    jwtCfg,
		repo:      repo,
		statsRepo: statsRepo,
		publisher: publisher,
		scheduler: scheduler,
		newSource: dice.NewSource,
	}
}

func (s *serv) Stats(_ context.Context) statsModel.GameStats {
	return s.statsRepo.Stats()
}

// Close Отменяет все запланированные броски компьютера и закрывает публикацию событий
func (s *serv) Close() error {
	cancelled := 0
	for _, session := range s.repo.List(context.Background()) {
		session.Mu.Lock()
		if session.HasPending() {
			session.CancelPending()
			cancelled++
		}
		session.Mu.Unlock()
	}
	if cancelled > 0 {
		log.Printf("cancelled %d pending computer turns", cancelled)
	}

	err := s.publisher.Close()
	if err != nil {
		log.Println("publisher close error:", err)
	}
	return err
}
