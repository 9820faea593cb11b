package bet

import (
	"errors"
	"net/http"
	"strconv"

	dto "charlies_odds_backend/internal/api/dto/bet"
	"charlies_odds_backend/internal/converter"
	"charlies_odds_backend/internal/middleware"
	"charlies_odds_backend/internal/service"
	betserv "charlies_odds_backend/internal/service/bet"
	"charlies_odds_backend/pkg/req"
	"charlies_odds_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv    service.BetService
	History service.HistoryService
}

type Handler struct {
	serv    service.BetService
	history service.HistoryService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, history: deps.History}
}

// Place рассчитывает одну моментальную ставку
func (h *Handler) Place(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.PlaceBetRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Place(r.Context(), userID, converter.ToBetRequest(payload))
	if err != nil {
		resp.WriteError(w, betStatus(err), err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlaceBetResponse(*result))
}

// History возвращает последние ставки пользователя
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	records, err := h.history.List(r.Context(), userID, limit, offset)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(records))
}

// ClearHistory удаляет всю историю ставок пользователя
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.history.Clear(r.Context(), userID); err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "failed to clear history")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func betStatus(err error) int {
	switch {
	case errors.Is(err, betserv.ErrUnknownGame),
		errors.Is(err, betserv.ErrBetOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, betserv.ErrGameDisabled):
		return http.StatusForbidden
	case errors.Is(err, betserv.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
