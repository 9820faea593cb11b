package converter

import (
	"charlies_odds_backend/internal/api/dto/admin"
	"charlies_odds_backend/internal/model"
)

func ToAdminUsersResponse(users []*model.User) admin.UsersResponse {
	out := make([]admin.UserResponse, len(users))
	for i, u := range users {
		out[i] = admin.UserResponse{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Balance:   u.Balance,
			IsAdmin:   u.IsAdmin,
			Level:     u.Level,
			CreatedAt: u.CreatedAt,
			TotalBets: u.Stats.TotalBets,
		}
	}
	return admin.UsersResponse{Users: out}
}

func ToGameSettingsModel(dto admin.GameSettingsDTO) *model.GameSettings {
	return &model.GameSettings{
		Game:      dto.Game,
		Enabled:   dto.Enabled,
		MinBet:    dto.MinBet,
		MaxBet:    dto.MaxBet,
		HouseEdge: dto.HouseEdge,
	}
}

func ToGameSettingsListResponse(list []*model.GameSettings) admin.GameSettingsListResponse {
	out := make([]admin.GameSettingsDTO, len(list))
	for i, s := range list {
		out[i] = admin.GameSettingsDTO{
			Game:      s.Game,
			Enabled:   s.Enabled,
			MinBet:    s.MinBet,
			MaxBet:    s.MaxBet,
			HouseEdge: s.HouseEdge,
		}
	}
	return admin.GameSettingsListResponse{Settings: out}
}
