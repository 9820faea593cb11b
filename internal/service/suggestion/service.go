package suggestion

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"charlies_odds_backend/internal/model"
	"charlies_odds_backend/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle      = errors.New("empty title")
	ErrUnknownCategory = errors.New("unknown category")
)

type serv struct {
	suggestionRepo repository.SuggestionRepository
}

func NewService(suggestionRepo repository.SuggestionRepository) *serv {
	return &serv{
		suggestionRepo: suggestionRepo,
	}
}

// Create - публикует новое предложение со статусом open
func (s *serv) Create(ctx context.Context, userID int, author, title, description, category string) (*model.Suggestion, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !model.SuggestionCategories[category] {
		return nil, ErrUnknownCategory
	}

	suggestion := &model.Suggestion{
		ID:          uuid.NewString(),
		UserID:      userID,
		Author:      author,
		Title:       title,
		Description: strings.TrimSpace(description),
		Category:    category,
		Status:      model.SuggestionOpen,
		CreatedAt:   time.Now(),
	}

	if err := s.suggestionRepo.CreateSuggestion(ctx, suggestion); err != nil {
		return nil, err
	}

	return suggestion, nil
}

// List - все предложения, сверху самые поддержанные
func (s *serv) List(ctx context.Context) ([]*model.Suggestion, error) {
	list, err := s.suggestionRepo.ListSuggestions(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score() > list[j].Score()
	})

	return list, nil
}

// Vote - голос за или против. Повторный голос в ту же сторону не проходит
func (s *serv) Vote(ctx context.Context, suggestionID string, userID int, up bool) error {
	if _, err := s.suggestionRepo.GetSuggestion(ctx, suggestionID); err != nil {
		return err
	}

	return s.suggestionRepo.Vote(ctx, suggestionID, userID, up)
}
