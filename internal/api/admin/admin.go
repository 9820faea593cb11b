package admin

import (
	"errors"
	"net/http"
	"strconv"

	dto "charlies_odds_backend/internal/api/dto/admin"
	"charlies_odds_backend/internal/converter"
	"charlies_odds_backend/internal/repository"
	"charlies_odds_backend/internal/service"
	adminserv "charlies_odds_backend/internal/service/admin"
	"charlies_odds_backend/pkg/req"
	"charlies_odds_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.AdminService
}

type Handler struct {
	serv service.AdminService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Users возвращает всех пользователей
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.serv.ListUsers(r.Context())
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "failed to load users")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAdminUsersResponse(users))
}

// SetBalance выставляет баланс пользователя напрямую
func (h *Handler) SetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	payload, err := req.Decode[dto.SetBalanceRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err = h.serv.SetBalance(r.Context(), userID, payload.Balance); err != nil {
		if errors.Is(err, adminserv.ErrNegativeBalance) {
			resp.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.WriteError(w, http.StatusInternalServerError, "failed to set balance")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser удаляет аккаунт вместе с историей ставок
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err = h.serv.DeleteUser(r.Context(), userID); err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GameSettings возвращает настройки всех игр
func (h *Handler) GameSettings(w http.ResponseWriter, r *http.Request) {
	list, err := h.serv.ListGameSettings(r.Context())
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "failed to load game settings")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToGameSettingsListResponse(list))
}

// UpdateGameSettings меняет настройки одной игры
func (h *Handler) UpdateGameSettings(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.GameSettingsDTO](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}
	payload.Game = chi.URLParam(r, "game")

	if err = h.serv.UpdateGameSettings(r.Context(), converter.ToGameSettingsModel(payload)); err != nil {
		if errors.Is(err, adminserv.ErrUnknownGame) || errors.Is(err, adminserv.ErrInvalidSettings) {
			resp.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.WriteError(w, http.StatusInternalServerError, "failed to update game settings")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetSuggestionStatus переводит предложение в новый статус
func (h *Handler) SetSuggestionStatus(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SuggestionStatusRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	suggestionID := chi.URLParam(r, "id")
	err = h.serv.SetSuggestionStatus(r.Context(), suggestionID, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, adminserv.ErrUnknownStatus):
			resp.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			resp.WriteError(w, http.StatusNotFound, "suggestion not found")
		default:
			resp.WriteError(w, http.StatusInternalServerError, "failed to update status")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
