package account

import (
	"errors"
	"net/http"

	dto "charlies_odds_backend/internal/api/dto/account"
	"charlies_odds_backend/internal/converter"
	"charlies_odds_backend/internal/middleware"
	"charlies_odds_backend/internal/service"
	accserv "charlies_odds_backend/internal/service/account"
	"charlies_odds_backend/pkg/req"
	"charlies_odds_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AccountService
}

type Handler struct {
	serv service.AccountService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Profile возвращает аккаунт с накопленной статистикой
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.serv.Profile(r.Context(), userID)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(user))
}

// DailyBonus выдаёт ежедневный бонус по уровню
func (h *Handler) DailyBonus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	bonus, balance, err := h.serv.ClaimDailyBonus(r.Context(), userID)
	if err != nil {
		if errors.Is(err, accserv.ErrBonusAlreadyClaimed) {
			resp.WriteError(w, http.StatusConflict, err.Error())
			return
		}
		resp.WriteError(w, http.StatusInternalServerError, "failed to claim bonus")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.DailyBonusResponse{
		Bonus:   bonus,
		Balance: balance,
	})
}

// SetCurrency меняет валюту отображения баланса
func (h *Handler) SetCurrency(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.CurrencyRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err = h.serv.SetCurrency(r.Context(), userID, payload.Currency); err != nil {
		if errors.Is(err, accserv.ErrUnknownCurrency) {
			resp.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.WriteError(w, http.StatusInternalServerError, "failed to set currency")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
