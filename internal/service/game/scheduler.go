package game

import (
	sessionModel "dice_game/internal/repository/game_repo/model"
	"time"
)

// Scheduler Планирование отложенного броска компьютера
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) sessionModel.Timer
}

type timerScheduler struct{}

// NewTimerScheduler Планировщик на time.AfterFunc
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

func (timerScheduler) AfterFunc(d time.Duration, f func()) sessionModel.Timer {
	return time.AfterFunc(d, f)
}
