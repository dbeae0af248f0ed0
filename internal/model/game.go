package model

import "fmt"

// GameConfiguration Неизменяемые настройки партии
type GameConfiguration struct {
	twoPlayer bool
	maxRounds int
}

// NewGameConfiguration - создает настройки партии.
// Количество раундов должно быть положительным
func NewGameConfiguration(twoPlayer bool, maxRounds int) (GameConfiguration, error) {
	if maxRounds < 1 {
		return GameConfiguration{}, fmt.Errorf("%w: max rounds must be positive, got %d", ErrInvalidConfiguration, maxRounds)
	}
	return GameConfiguration{
		twoPlayer: twoPlayer,
		maxRounds: maxRounds,
	}, nil
}

func (c GameConfiguration) IsTwoPlayerMode() bool {
	return c.twoPlayer
}

func (c GameConfiguration) MaxRounds() int {
	return c.maxRounds
}

// TurnState Состояние автомата ходов
type TurnState int

const (
	AwaitingRoll TurnState = iota
	// ComputerPending - только одиночный режим: человек бросил, ждем броска компьютера
	ComputerPending
	// RoundAdvance - переходное состояние внутри броска, снаружи не наблюдается
	RoundAdvance
	Ended
)

func (s TurnState) String() string {
	switch s {
	case AwaitingRoll:
		return "awaiting_roll"
	case ComputerPending:
		return "computer_pending"
	case RoundAdvance:
		return "round_advance"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("turn_state(%d)", int(s))
	}
}

// RollOutcome Результат одного броска. Создается один раз и не изменяется
type RollOutcome struct {
	Die1     int
	Die2     int
	Points   int
	IsDouble bool
	Actor    PlayerAccount // Снимок счета игрока после начисления
	Round    int           // Раунд, к которому относится бросок
	Ended    bool          // Этот бросок завершил игру
}

// Winner Итог сравнения счетов
type Winner int

const (
	WinnerPlayer1 Winner = iota + 1
	WinnerPlayer2
	WinnerTie
)

func (w Winner) String() string {
	switch w {
	case WinnerPlayer1:
		return "player1"
	case WinnerPlayer2:
		return "player2"
	case WinnerTie:
		return "tie"
	default:
		return "none"
	}
}

// GameResult Итоги завершенной партии
type GameResult struct {
	Winner        Winner
	Player1       PlayerAccount
	Player2       PlayerAccount
	RoundsPlayed  int
	TwoPlayerMode bool
}

// Headline - строка с победителем, как на экране окончания игры
func (r GameResult) Headline() string {
	switch r.Winner {
	case WinnerPlayer1:
		return r.Player1.Name + " WINS!"
	case WinnerPlayer2:
		return r.Player2.Name + " WINS!"
	default:
		return "IT'S A TIE!"
	}
}
