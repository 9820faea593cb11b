package converter

import (
	"charlies_odds_backend/internal/api/dto/bet"
	"charlies_odds_backend/internal/model"
)

func ToBetRequest(req bet.PlaceBetRequest) model.BetRequest {
	return model.BetRequest{
		Game:  req.Game,
		Stake: req.Stake,
		Params: model.BetParams{
			Multiplier: req.Params.Multiplier,
			RollUnder:  req.Params.RollUnder,
			Target:     req.Params.Target,
		},
	}
}

func ToPlaceBetResponse(res model.BetResult) bet.PlaceBetResponse {
	return bet.PlaceBetResponse{
		Bet:        toBetResponse(&res.Record),
		Balance:    res.Balance,
		Level:      res.Level,
		Experience: res.Experience,
	}
}

func ToHistoryResponse(records []*model.BetRecord) bet.HistoryResponse {
	bets := make([]bet.BetResponse, len(records))
	for i, r := range records {
		bets[i] = toBetResponse(r)
	}
	return bet.HistoryResponse{Bets: bets}
}

func toBetResponse(r *model.BetRecord) bet.BetResponse {
	return bet.BetResponse{
		ID:         r.ID,
		Game:       r.Game,
		Stake:      r.Stake,
		Payout:     r.Payout,
		Multiplier: r.Multiplier,
		Result:     r.Result,
		CreatedAt:  r.CreatedAt,
	}
}
