package history

import (
	"context"

	"charlies_odds_backend/internal/model"
	"charlies_odds_backend/internal/repository"
)

// Больше этого за один запрос не отдаём
const maxListLimit = 1000

type serv struct {
	betRepo repository.BetRepository
}

func NewService(betRepo repository.BetRepository) *serv {
	return &serv{
		betRepo: betRepo,
	}
}

// List - возвращает страницу ставок пользователя, новые первыми
func (s *serv) List(ctx context.Context, userID int, limit, offset int) ([]*model.BetRecord, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.betRepo.ListBets(ctx, userID, limit, offset)
}

// Clear - удаляет всю историю ставок пользователя
func (s *serv) Clear(ctx context.Context, userID int) error {
	return s.betRepo.ClearBets(ctx, userID)
}
