package model

import "errors"

var (
	// ErrInvalidConfiguration - настройки игры не прошли проверку (например, число раундов < 1)
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	// ErrGameAlreadyEnded - бросок запрошен после окончания игры
	ErrGameAlreadyEnded = errors.New("game already ended")
	// ErrInvalidScoreInput - попытка начислить отрицательное количество очков
	ErrInvalidScoreInput = errors.New("invalid score input")
	// ErrGameNotEnded - победитель запрошен до окончания игры
	ErrGameNotEnded = errors.New("game not ended")
	// ErrUnknownPlayer - номер игрока вне {1, 2}
	ErrUnknownPlayer = errors.New("unknown player")

	ErrGameNotFound        = errors.New("game not found")
	ErrComputerTurnPending = errors.New("computer turn pending")
)
