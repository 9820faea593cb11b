package crash

import (
	"errors"
	"net/http"

	dto "charlies_odds_backend/internal/api/dto/crash"
	"charlies_odds_backend/internal/converter"
	"charlies_odds_backend/internal/middleware"
	"charlies_odds_backend/internal/service"
	crashserv "charlies_odds_backend/internal/service/crash"
	"charlies_odds_backend/pkg/req"
	"charlies_odds_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.CrashService
}

type Handler struct {
	serv service.CrashService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Start запускает раунд: ставка списывается сразу
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

	state, err := h.serv.Start(r.Context(), userID, converter.ToCrashStart(payload))
	if err != nil {
		resp.WriteError(w, crashStatus(err), err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCrashStateResponse(*state))
}

// Cashout фиксирует выигрыш по текущему множителю
func (h *Handler) Cashout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	state, err := h.serv.Cashout(r.Context(), userID)
	if err != nil {
		resp.WriteError(w, crashStatus(err), err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCrashStateResponse(*state))
}

// State возвращает снимок текущего либо последнего раунда
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	state, err := h.serv.State(r.Context(), userID)
	if err != nil {
		resp.WriteError(w, crashStatus(err), err.Error())
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCrashStateResponse(*state))
}

func crashStatus(err error) int {
	switch {
	case errors.Is(err, crashserv.ErrBetOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, crashserv.ErrGameDisabled):
		return http.StatusForbidden
	case errors.Is(err, crashserv.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, crashserv.ErrRoundActive),
		errors.Is(err, crashserv.ErrRoundOver):
		return http.StatusConflict
	case errors.Is(err, crashserv.ErrNoRound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
