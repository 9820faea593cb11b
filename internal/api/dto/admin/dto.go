package admin

import "time"

type UserResponse struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Balance   int64     `json:"balance"` // В центах
	IsAdmin   bool      `json:"is_admin"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	TotalBets int       `json:"total_bets"`
}

type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

type SetBalanceRequest struct {
	Balance int64 `json:"balance"` // В центах
}

type GameSettingsDTO struct {
	Game      string  `json:"game"`
	Enabled   bool    `json:"enabled"`
	MinBet    int64   `json:"min_bet"`
	MaxBet    int64   `json:"max_bet"`
	HouseEdge float64 `json:"house_edge"` // Проценты
}

type GameSettingsListResponse struct {
	Settings []GameSettingsDTO `json:"settings"`
}

type SuggestionStatusRequest struct {
	Status string `json:"status"`
}
