package game

import (
	"context"
	"dice_game/internal/model"
	sessionModel "dice_game/internal/repository/game_repo/model"
	"fmt"
	"log"
	"time"
)

// publishTimeout Ограничение на запись события после броска компьютера
const publishTimeout = 5 * time.Second

// Roll Бросок за игрока-человека, чей сейчас ход.
// Пока ожидается бросок компьютера, запросы отклоняются
func (s *serv) Roll(ctx context.Context, id string) (*model.RollResult, error) {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Mu.Lock()
	defer session.Mu.Unlock()

	if session.Engine.IsComputerTurn() {
		return nil, fmt.Errorf("%w: game %s", model.ErrComputerTurnPending, id)
	}

	outcome, err := session.Engine.RequestRoll()
	if err != nil {
		return nil, err
	}
	s.afterRoll(ctx, session, outcome)

	// Одиночный режим: ход перешел к компьютеру
	if session.Engine.IsComputerTurn() {
		s.scheduleComputerTurn(session)
	}

	return &model.RollResult{
		Outcome: outcome,
		Game:    snapshot(session),
	}, nil
}

// scheduleComputerTurn Вызывается под session.Mu
func (s *serv) scheduleComputerTurn(session *sessionModel.Session) {
	var timer sessionModel.Timer
	timer = s.scheduler.AfterFunc(s.gameCfg.ComputerDelay(), func() {
		s.computerTurn(session, timer)
	})
	session.SetPending(timer)
}

// computerTurn Срабатывание таймера. Отмененный или замененный таймер ничего не делает
func (s *serv) computerTurn(session *sessionModel.Session, timer sessionModel.Timer) {
	session.Mu.Lock()
	defer session.Mu.Unlock()

	if !session.IsPending(timer) {
		return
	}
	session.ClearPending()

	if !session.Engine.IsComputerTurn() {
		return
	}

	outcome, err := session.Engine.RequestRoll()
	if err != nil {
		log.Printf("[game %s] computer roll error: %v", session.ID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	s.afterRoll(ctx, session, outcome)
}

// afterRoll Статистика и события после броска. Ошибка публикации не отменяет бросок
func (s *serv) afterRoll(ctx context.Context, session *sessionModel.Session, outcome model.RollOutcome) {
	s.statsRepo.RecordRoll(outcome)
	if err := s.publisher.PublishRoll(ctx, session.ID, outcome); err != nil {
		log.Printf("[game %s] publish roll error: %v", session.ID, err)
	}

	if !outcome.Ended {
		return
	}

	result, err := session.Engine.Result()
	if err != nil {
		log.Printf("[game %s] result error: %v", session.ID, err)
		return
	}
	s.statsRepo.RecordGameEnded(result)
	if err := s.publisher.PublishGameEnded(ctx, session.ID, result); err != nil {
		log.Printf("[game %s] publish result error: %v", session.ID, err)
	}
	log.Printf("[game %s] finished: %s (%d:%d)", session.ID, result.Headline(), result.Player1.Score, result.Player2.Score)
}
