package engine

// NewGame - сбрасывает счета, кубики, раунд и очередь хода. Настройки не меняются
func (e *Engine) NewGame() {
	e.player1.ResetScore()
	e.player2.ResetScore()

	e.die1.Reset()
	e.die2.Reset()

	e.currentRound = 1
	e.player1Turn = true
	e.ended = false
}
