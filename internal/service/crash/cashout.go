package crash

import (
	"context"
	"time"

	"charlies_odds_backend/internal/model"
)

func (s *serv) Cashout(ctx context.Context, userID int) (*model.CrashState, error) {
	s.mu.Lock()
	r, ok := s.rounds[userID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoRound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != model.CrashActive {
		return nil, ErrRoundOver
	}

	now := time.Now()

	// Гонка с тикером: если точка краха уже пройдена, раунд проигран
	if now.Sub(r.startedAt) >= r.duration {
		if err := s.settleLocked(r, model.CrashCrashed, r.crashPoint); err != nil {
			return nil, err
		}
		return r.stateLocked(), nil
	}

	if err := s.settleLocked(r, model.CrashCashedOut, r.multiplierAt(now)); err != nil {
		return nil, err
	}

	return r.stateLocked(), nil
}
