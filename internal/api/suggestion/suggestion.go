package suggestion

import (
	"errors"
	"net/http"

	dto "charlies_odds_backend/internal/api/dto/suggestion"
	"charlies_odds_backend/internal/converter"
	"charlies_odds_backend/internal/middleware"
	"charlies_odds_backend/internal/repository"
	"charlies_odds_backend/internal/service"
	sgserv "charlies_odds_backend/internal/service/suggestion"
	"charlies_odds_backend/pkg/req"
	"charlies_odds_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv    service.SuggestionService
	Account service.AccountService
}

type Handler struct {
	serv    service.SuggestionService
	account service.AccountService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv, account: deps.Account}
}

// Create публикует предложение от имени текущего пользователя
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.CreateRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	// Автор подписывается своим ником
	user, err := h.account.Profile(r.Context(), userID)
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	created, err := h.serv.Create(r.Context(), userID, user.Username, payload.Title, payload.Description, payload.Category)
	if err != nil {
		if errors.Is(err, sgserv.ErrEmptyTitle) || errors.Is(err, sgserv.ErrUnknownCategory) {
			resp.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.WriteError(w, http.StatusInternalServerError, "failed to create suggestion")
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToSuggestionResponse(created))
}

// List возвращает все предложения, сверху самые поддержанные
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.serv.List(r.Context())
	if err != nil {
		resp.WriteError(w, http.StatusInternalServerError, "failed to load suggestions")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSuggestionListResponse(list))
}

// Vote принимает голос за или против предложения
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.VoteRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, "invalid request")
		return
	}

	suggestionID := chi.URLParam(r, "id")
	err = h.serv.Vote(r.Context(), suggestionID, userID, payload.Up)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			resp.WriteError(w, http.StatusNotFound, "suggestion not found")
		case errors.Is(err, repository.ErrAlreadyVoted):
			resp.WriteError(w, http.StatusConflict, err.Error())
		default:
			resp.WriteError(w, http.StatusInternalServerError, "failed to vote")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
