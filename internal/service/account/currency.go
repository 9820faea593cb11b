package account

import (
	"context"

	"charlies_odds_backend/internal/model"
)

func (s *serv) SetCurrency(ctx context.Context, userID int, currency string) error {
	if !model.Currencies[currency] {
		return ErrUnknownCurrency
	}

	return s.userRepo.UpdateCurrency(ctx, userID, currency)
}
