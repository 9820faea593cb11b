package crash

import (
	"context"
	"time"

	"charlies_odds_backend/internal/model"
)

func (s *serv) State(ctx context.Context, userID int) (*model.CrashState, error) {
	s.mu.Lock()
	r, ok := s.rounds[userID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoRound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status == model.CrashActive {
		return &model.CrashState{
			RoundID:    r.id,
			Status:     r.status,
			Multiplier: r.multiplierAt(time.Now()),
			Stake:      r.stake,
		}, nil
	}

	return r.stateLocked(), nil
}

// stateLocked - снимок завершённого раунда. Вызывается под r.mu
func (r *round) stateLocked() *model.CrashState {
	return &model.CrashState{
		RoundID:    r.id,
		Status:     r.status,
		Multiplier: r.multiplier,
		CrashPoint: r.crashPoint,
		Stake:      r.stake,
		Payout:     r.payout,
		Balance:    r.balance,
	}
}
