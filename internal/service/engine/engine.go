package engine

import (
	"dice_game/internal/model"
	"dice_game/internal/service/dice"
	"fmt"
)

const (
	defaultPlayer1Name  = "Player 1"
	defaultPlayer2Name  = "Player 2"
	defaultComputerName = "Computer"
)

// Engine Автомат ходов партии: раунд, очередь хода, режим, окончание игры.
// Не синхронизирован - хост обязан сериализовать вызовы
type Engine struct {
	cfg model.GameConfiguration

	die1 *dice.Die
	die2 *dice.Die

	player1 *model.PlayerAccount
	player2 *model.PlayerAccount

	currentRound int
	player1Turn  bool
	ended        bool
}

type options struct {
	src         dice.Source
	player1Name string
	player2Name string
}

type Option func(*options)

// WithSource - источник случайности для обоих кубиков
func WithSource(src dice.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithPlayerNames - имена игроков. Пустое имя заменяется значением по умолчанию
func WithPlayerNames(player1, player2 string) Option {
	return func(o *options) {
		o.player1Name = player1
		o.player2Name = player2
	}
}

// New - создает движок в начальном состоянии: раунд 1, ход первого игрока
func New(cfg model.GameConfiguration, opts ...Option) (*Engine, error) {
	if cfg.MaxRounds() < 1 {
		return nil, fmt.Errorf("%w: max rounds must be positive, got %d", model.ErrInvalidConfiguration, cfg.MaxRounds())
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = dice.NewSource()
	}
	if o.player1Name == "" {
		o.player1Name = defaultPlayer1Name
	}
	if o.player2Name == "" {
		o.player2Name = defaultOpponentName(cfg)
	}
	if o.player1Name == o.player2Name {
		return nil, fmt.Errorf("%w: players must have distinct names, both are %q", model.ErrInvalidConfiguration, o.player1Name)
	}

	e := &Engine{
		cfg:     cfg,
		die1:    dice.New(o.src),
		die2:    dice.New(o.src),
		player1: model.NewPlayerAccount(o.player1Name),
		player2: model.NewPlayerAccount(o.player2Name),
	}
	e.NewGame()
	return e, nil
}

func defaultOpponentName(cfg model.GameConfiguration) string {
	if cfg.IsTwoPlayerMode() {
		return defaultPlayer2Name
	}
	return defaultComputerName
}

func (e *Engine) Config() model.GameConfiguration {
	return e.cfg
}

func (e *Engine) CurrentRound() int {
	return e.currentRound
}

// RoundsCompleted - сколько раундов сыграно полностью (для индикатора прогресса)
func (e *Engine) RoundsCompleted() int {
	if e.currentRound-1 > e.cfg.MaxRounds() {
		return e.cfg.MaxRounds()
	}
	return e.currentRound - 1
}

func (e *Engine) IsPlayer1Turn() bool {
	return e.player1Turn
}

func (e *Engine) IsEnded() bool {
	return e.ended
}

// IsComputerTurn - одиночный режим, игра идет и ход за компьютером
func (e *Engine) IsComputerTurn() bool {
	return !e.cfg.IsTwoPlayerMode() && !e.player1Turn && !e.ended
}

func (e *Engine) State() model.TurnState {
	switch {
	case e.ended:
		return model.Ended
	case e.IsComputerTurn():
		return model.ComputerPending
	default:
		return model.AwaitingRoll
	}
}

// Player - снимок счета игрока 1 или 2
func (e *Engine) Player(n int) (model.PlayerAccount, error) {
	switch n {
	case 1:
		return *e.player1, nil
	case 2:
		return *e.player2, nil
	default:
		return model.PlayerAccount{}, fmt.Errorf("%w: %d", model.ErrUnknownPlayer, n)
	}
}

func (e *Engine) Player1() model.PlayerAccount {
	return *e.player1
}

func (e *Engine) Player2() model.PlayerAccount {
	return *e.player2
}

// CurrentPlayer - снимок счета игрока, чей сейчас ход
func (e *Engine) CurrentPlayer() model.PlayerAccount {
	return *e.actingPlayer()
}

// Dice - последние выпавшие грани
func (e *Engine) Dice() (int, int) {
	return e.die1.Value(), e.die2.Value()
}

func (e *Engine) actingPlayer() *model.PlayerAccount {
	if e.player1Turn {
		return e.player1
	}
	return e.player2
}
