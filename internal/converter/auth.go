package converter

import (
	"charlies_odds_backend/internal/api/dto/auth"
	"charlies_odds_backend/internal/model"
)

func RegisterRequestToUserModel(req *auth.RegisterRequest) *model.User {
	return &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
}
