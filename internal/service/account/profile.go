package account

import (
	"context"

	"charlies_odds_backend/internal/model"
)

func (s *serv) Profile(ctx context.Context, userID int) (*model.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
