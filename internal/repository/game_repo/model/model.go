package model

import (
	"dice_game/internal/service/engine"
	"sync"
	"time"
)

// Timer Отложенный вызов, который хост может отменить
type Timer interface {
	Stop() bool
}

// Session Партия, принадлежащая одному хосту.
// Все обращения к Engine и pending выполняются под Mu
type Session struct {
	ID        string
	CreatedAt time.Time

	Mu     sync.Mutex
	Engine *engine.Engine

	// Запланированный бросок компьютера (только одиночный режим)
	pending Timer
}

// SetPending Запоминает таймер броска компьютера, отменяя предыдущий
func (s *Session) SetPending(t Timer) {
	s.CancelPending()
	s.pending = t
}

// CancelPending Отменяет запланированный бросок компьютера, если он есть
func (s *Session) CancelPending() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
}

// ClearPending Сбрасывает таймер после того, как он сработал
func (s *Session) ClearPending() {
	s.pending = nil
}

// IsPending Является ли t текущим запланированным таймером
func (s *Session) IsPending(t Timer) bool {
	return s.pending != nil && s.pending == t
}

// HasPending Есть ли запланированный бросок компьютера
func (s *Session) HasPending() bool {
	return s.pending != nil
}
