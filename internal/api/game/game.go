package game

import (
	dto "dice_game/internal/api/dto/game"
	"dice_game/internal/converter"
	"dice_game/internal/middleware"
	"dice_game/internal/model"
	"dice_game/internal/service"
	"dice_game/pkg/req"
	"dice_game/pkg/resp"
	"errors"
	"io"
	"log"
	"net/http"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Create Новая партия. Пустое тело - все параметры по умолчанию
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.CreateGameRequest](r.Body)
	if err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	created, err := h.serv.Create(r.Context(), converter.ToNewGame(payload))
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToCreateGameResponse(*created))
}

// Get Состояние партии
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.GameIDFromContext(r.Context())

	g, err := h.serv.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(*g))
}

// Roll Бросок за игрока, чей сейчас ход
func (h *Handler) Roll(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.GameIDFromContext(r.Context())

	result, err := h.serv.Roll(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToRollResponse(*result))
}

// NewGame Перезапуск партии с теми же настройками
func (h *Handler) NewGame(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.GameIDFromContext(r.Context())

	g, err := h.serv.NewGame(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(*g))
}

// SwitchMode Переключение одиночного режима и режима двух игроков
func (h *Handler) SwitchMode(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.GameIDFromContext(r.Context())

	g, err := h.serv.SwitchMode(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameResponse(*g))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.GameIDFromContext(r.Context())

	if err := h.serv.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats Сводная статистика по всем партиям
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats(r.Context())))
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrInvalidConfiguration):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, model.ErrGameAlreadyEnded), errors.Is(err, model.ErrComputerTurnPending):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Println("game handler error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
