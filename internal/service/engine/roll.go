package engine

import (
	"dice_game/internal/model"
	"dice_game/internal/service/scorer"
	"fmt"
)

// RequestRoll - бросок за игрока, чей сейчас ход.
// После окончания игры возвращает model.ErrGameAlreadyEnded и ничего не меняет.
// В одиночном режиме после броска человека ход переходит к компьютеру,
// и хост должен сам вызвать RequestRoll еще раз (сразу или по таймеру)
func (e *Engine) RequestRoll() (model.RollOutcome, error) {
	if e.ended {
		return model.RollOutcome{}, fmt.Errorf("%w: round %d of %d", model.ErrGameAlreadyEnded, e.currentRound, e.cfg.MaxRounds())
	}

	// 1. Два независимых броска
	die1 := e.die1.Roll()
	die2 := e.die2.Roll()

	// 2. Подсчет очков
	points, isDouble := scorer.Score(die1, die2)

	// 3. Начисление очков текущему игроку
	actor := e.actingPlayer()
	if err := actor.AddScore(points); err != nil {
		return model.RollOutcome{}, err
	}

	round := e.currentRound

	// 4. Переход хода и раунда
	e.advance()

	// 5. Проверка окончания игры
	if e.currentRound > e.cfg.MaxRounds() {
		e.ended = true
	}

	return model.RollOutcome{
		Die1:     die1,
		Die2:     die2,
		Points:   points,
		IsDouble: isDouble,
		Actor:    *actor,
		Round:    round,
		Ended:    e.ended,
	}, nil
}

// advance - единая функция перехода для обоих режимов
func (e *Engine) advance() {
	if e.cfg.IsTwoPlayerMode() {
		e.player1Turn = !e.player1Turn
		// Ход вернулся к первому игроку - оба бросили, раунд закончен
		if e.player1Turn {
			e.currentRound++
		}
		return
	}

	if e.player1Turn {
		// Человек бросил, дальше бросает компьютер
		e.player1Turn = false
		return
	}

	// Компьютер бросил - новый раунд, ход человека
	e.currentRound++
	e.player1Turn = true
}
