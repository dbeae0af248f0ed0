package game_repo

import (
	"context"
	"dice_game/internal/model"
	"dice_game/internal/repository"
	sessionModel "dice_game/internal/repository/game_repo/model"
	"fmt"
	"sync"
)

// repo Партии хранятся только в памяти процесса
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*sessionModel.Session
}

func NewGameRepository() repository.GameRepository {
	return &repo{
		sessions: make(map[string]*sessionModel.Session),
	}
}

// Create - сохраняет новую партию. ID должен быть уникальным
func (r *repo) Create(_ context.Context, session *sessionModel.Session) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("game %s already exists", session.ID)
	}
	r.sessions[session.ID] = session
	return nil
}

// Get - возвращает партию по ID
func (r *repo) Get(_ context.Context, id string) (*sessionModel.Session, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, id)
	}
	return session, nil
}

// Delete - удаляет партию и возвращает ее, чтобы вызывающий мог отменить таймеры
func (r *repo) Delete(_ context.Context, id string) (*sessionModel.Session, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrGameNotFound, id)
	}
	delete(r.sessions, id)
	return session, nil
}

// List - все текущие партии
func (r *repo) List(_ context.Context) []*sessionModel.Session {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	result := make([]*sessionModel.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		result = append(result, s)
	}
	return result
}
