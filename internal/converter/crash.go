package converter

import (
	"charlies_odds_backend/internal/api/dto/crash"
	"charlies_odds_backend/internal/model"
)

func ToCrashStart(req crash.StartRequest) model.CrashStart {
	return model.CrashStart{
		Stake:       req.Stake,
		AutoCashout: req.AutoCashout,
		CashoutAt:   req.CashoutAt,
	}
}

func ToCrashStateResponse(state model.CrashState) crash.StateResponse {
	return crash.StateResponse{
		RoundID:    state.RoundID,
		Status:     state.Status,
		Multiplier: state.Multiplier,
		CrashPoint: state.CrashPoint,
		Stake:      state.Stake,
		Payout:     state.Payout,
		Balance:    state.Balance,
	}
}
