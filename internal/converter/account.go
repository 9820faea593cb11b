package converter

import (
	"charlies_odds_backend/internal/api/dto/account"
	"charlies_odds_backend/internal/model"
)

func ToProfileResponse(user *model.User) account.ProfileResponse {
	return account.ProfileResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		Balance:     user.Balance,
		IsAdmin:     user.IsAdmin,
		Currency:    user.Currency,
		Level:       user.Level,
		Experience:  user.Experience,
		NextLevelXP: model.LevelRequirement(user.Level),
		CreatedAt:   user.CreatedAt,
		Stats: account.StatsDTO{
			TotalBets:    user.Stats.TotalBets,
			TotalWins:    user.Stats.TotalWins,
			TotalLosses:  user.Stats.TotalLosses,
			TotalWagered: user.Stats.TotalWagered,
			TotalWon:     user.Stats.TotalWon,
			BiggestWin:   user.Stats.BiggestWin,
			BiggestLoss:  user.Stats.BiggestLoss,
		},
	}
}
