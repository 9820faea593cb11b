package converter

import (
	"charlies_odds_backend/internal/api/dto/autobet"
	"charlies_odds_backend/internal/model"
)

func ToAutoBetConfig(req autobet.StartRequest) model.AutoBetConfig {
	return model.AutoBetConfig{
		Game:  req.Game,
		Stake: req.Stake,
		Params: model.BetParams{
			Multiplier: req.Params.Multiplier,
			RollUnder:  req.Params.RollUnder,
			Target:     req.Params.Target,
		},
		Strategy:         req.Strategy,
		OnWin:            req.OnWin,
		OnLoss:           req.OnLoss,
		IncreaseBy:       req.IncreaseBy,
		DecreaseBy:       req.DecreaseBy,
		LossMultiplier:   req.LossMultiplier,
		Sequence:         req.Sequence,
		StopOnProfit:     req.StopOnProfit,
		StopProfitAmount: req.StopProfitAmount,
		StopOnLoss:       req.StopOnLoss,
		StopLossAmount:   req.StopLossAmount,
		MaxBets:          req.MaxBets,
		Infinite:         req.Infinite,
		Instant:          req.Instant,
	}
}

func ToAutoBetStatusResponse(status model.AutoBetStatus) autobet.StatusResponse {
	history := make([]autobet.ProfitPointDTO, len(status.ProfitHistory))
	for i, p := range status.ProfitHistory {
		history[i] = autobet.ProfitPointDTO{
			Bet:    p.Bet,
			Profit: p.Profit,
		}
	}

	return autobet.StatusResponse{
		Running:       status.Running,
		Game:          status.Game,
		Strategy:      status.Strategy,
		BaseBet:       status.BaseBet,
		CurrentStake:  status.CurrentStake,
		RemainingBets: status.RemainingBets,
		Infinite:      status.Infinite,
		StopNextWin:   status.StopNextWin,
		StopReason:    status.StopReason,

		SessionProfit:     status.SessionProfit,
		TotalBets:         status.TotalBets,
		Wins:              status.Wins,
		Losses:            status.Losses,
		CurrentStreak:     status.CurrentStreak,
		WinStreak:         status.WinStreak,
		LongestWinStreak:  status.LongestWinStreak,
		LongestLossStreak: status.LongestLossStreak,
		ProfitHistory:     history,
	}
}
