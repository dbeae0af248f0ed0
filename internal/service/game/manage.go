package game

import (
	"context"
	"dice_game/internal/model"
	"dice_game/internal/repository"
	"log"
)

// Get Текущее состояние партии
func (s *serv) Get(ctx context.Context, id string) (*model.GameSnapshot, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	snap := snapshot(session)
	return &snap, nil
}

// NewGame Перезапуск партии с теми же настройками. Ожидающий бросок компьютера отменяется
func (s *serv) NewGame(ctx context.Context, id string) (*model.GameSnapshot, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	session.CancelPending()
	session.Engine.NewGame()
	s.statsRepo.RecordGameStarted(session.Engine.Config().IsTwoPlayerMode())

	log.Printf("[game %s] restarted", session.ID)

	snap := snapshot(session)
	return &snap, nil
}

// SwitchMode Переключение режима: новый соперник, новая партия с тем же числом раундов
func (s *serv) SwitchMode(ctx context.Context, id string) (*model.GameSnapshot, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	current := session.Engine.Config()
	cfg, err := model.NewGameConfiguration(!current.IsTwoPlayerMode(), current.MaxRounds())
	if err != nil {
		return nil, err
	}

	// Первый игрок сохраняет имя, второй получает имя по умолчанию для нового режима
	eng, err := s.newEngine(cfg, session.Engine.Player1().Name, "")
	if err != nil {
		return nil, err
	}

	session.CancelPending()
	session.Engine = eng
	s.statsRepo.RecordGameStarted(cfg.IsTwoPlayerMode())

	log.Printf("[game %s] mode switched: two_player=%v", session.ID, cfg.IsTwoPlayerMode())

	snap := snapshot(session)
	return &snap, nil
}

// Delete Удаляет партию и отменяет ее таймер
func (s *serv) Delete(ctx context.Context, id string) error {
	session, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	session.Mu.Lock()
	session.CancelPending()
	session.Mu.Unlock()

	// Зрители удаленной партии больше ничего не получат
	if c, ok := s.publisher.(repository.GameCloser); ok {
		c.CloseGame(id)
	}

	log.Printf("[game %s] deleted", id)
	return nil
}
