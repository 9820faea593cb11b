package autobet

import (
	"errors"
	"net/http"

	dto "charlies_odds_backend/internal/api/dto/autobet"
	strategy "charlies_odds_backend/internal/autobet"
	"charlies_odds_backend/internal/converter"
	"charlies_odds_backend/internal/middleware"
	"charlies_odds_backend/internal/service"
	autoserv "charlies_odds_backend/internal/service/autobet"
	"charlies_odds_backend/pkg/req"
	"charlies_odds_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AutoBetService
}

type Handler struct {
	serv service.AutoBetService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Start запускает серию авто-ставок
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.StartRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	err = h.serv.Start(r.Context(), userID, converter.ToAutoBetConfig(payload))
	if err != nil {
		resp.WriteError(w, autoBetStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// Stop останавливает серию немедленно
func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.serv.Stop(r.Context(), userID); err != nil {
		resp.WriteError(w, autoBetStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// StopOnNextWin помечает серию: остановиться после первого выигрыша
func (h *Handler) StopOnNextWin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.serv.StopOnNextWin(r.Context(), userID); err != nil {
		resp.WriteError(w, autoBetStatus(err), err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Status возвращает снимок серии и статистику сессии
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	status, err := h.serv.Status(r.Context(), userID)
	if err != nil {
		resp.WriteError(w, autoBetStatus(err), err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAutoBetStatusResponse(*status))
}

func autoBetStatus(err error) int {
	switch {
	case errors.Is(err, strategy.ErrBadConfig):
		return http.StatusBadRequest
	case errors.Is(err, autoserv.ErrSessionActive):
		return http.StatusConflict
	case errors.Is(err, autoserv.ErrNoSession):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
