package model

import (
	"fmt"
)

// doublesThreshold Очки выше этого значения достижимы только дублем (максимум без дубля - 11).
// Порог применяется к уже удвоенному значению, а не к флагу IsDouble броска.
const doublesThreshold = 12

// PlayerAccount Счет и статистика бросков одного участника игры
type PlayerAccount struct {
	Name                   string // Имя - ключ идентичности игрока в рамках игры
	Score                  int    // Сумма всех начисленных очков
	RollCount              int    // Количество бросков
	DoublesCount           int    // Количество дублей (по порогу doublesThreshold)
	HighestSingleRoll      int    // Лучший одиночный бросок
	TotalPointsFromDoubles int    // Очки, полученные дублями
}

func NewPlayerAccount(name string) *PlayerAccount {
	return &PlayerAccount{Name: name}
}

// AddScore - начисляет очки за бросок и обновляет статистику.
// Отрицательные очки отклоняются без изменения счета
func (p *PlayerAccount) AddScore(points int) error {
	if points < 0 {
		return fmt.Errorf("%w: %d points for %s", ErrInvalidScoreInput, points, p.Name)
	}

	p.Score += points
	p.RollCount++

	if points > p.HighestSingleRoll {
		p.HighestSingleRoll = points
	}

	if points > doublesThreshold {
		p.DoublesCount++
		p.TotalPointsFromDoubles += points
	}
	return nil
}

// ResetScore - обнуляет счет и всю статистику
func (p *PlayerAccount) ResetScore() {
	p.Score = 0
	p.RollCount = 0
	p.DoublesCount = 0
	p.HighestSingleRoll = 0
	p.TotalPointsFromDoubles = 0
}

// AverageScore - средний результат за бросок, 0 если бросков не было
func (p PlayerAccount) AverageScore() float64 {
	if p.RollCount == 0 {
		return 0.0
	}
	return float64(p.Score) / float64(p.RollCount)
}

// DoublesPercentage - доля дублей в процентах, 0 если бросков не было
func (p PlayerAccount) DoublesPercentage() float64 {
	if p.RollCount == 0 {
		return 0.0
	}
	return float64(p.DoublesCount) / float64(p.RollCount) * 100
}

// SameAs - два счета принадлежат одному игроку тогда и только тогда, когда совпадают имена
func (p PlayerAccount) SameAs(other PlayerAccount) bool {
	return p.Name == other.Name
}

func (p PlayerAccount) HasWonAgainst(other PlayerAccount) bool {
	return p.Score > other.Score
}

func (p PlayerAccount) IsTiedWith(other PlayerAccount) bool {
	return p.Score == other.Score
}

func (p PlayerAccount) Summary() string {
	return fmt.Sprintf("%s: %d points (%d rolls)", p.Name, p.Score, p.RollCount)
}

// DetailedStatistics - многострочная сводка для экрана окончания игры
func (p PlayerAccount) DetailedStatistics() string {
	return fmt.Sprintf(
		"=== %s Statistics ===\n"+
			"Total Score: %d points\n"+
			"Rolls Made: %d\n"+
			"Doubles Rolled: %d (%.1f%%)\n"+
			"Highest Single Roll: %d points\n"+
			"Points from Doubles: %d\n"+
			"Average Score per Roll: %.2f points",
		p.Name, p.Score, p.RollCount, p.DoublesCount, p.DoublesPercentage(),
		p.HighestSingleRoll, p.TotalPointsFromDoubles, p.AverageScore(),
	)
}
