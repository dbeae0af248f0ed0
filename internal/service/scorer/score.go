package scorer

// doublesMultiplier Множитель суммы при дубле
const doublesMultiplier = 2

// Score - считает очки за бросок двух кубиков.
// Сумма граней удваивается, если грани совпали
func Score(die1, die2 int) (points int, isDouble bool) {
	base := die1 + die2
	isDouble = die1 == die2
	if isDouble {
		return base * doublesMultiplier, true
	}
	return base, false
}
