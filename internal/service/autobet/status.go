package autobet

import (
	"context"

	"charlies_odds_backend/internal/model"
)

func (s *serv) Status(ctx context.Context, userID int) (*model.AutoBetStatus, error) {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrNoSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	remaining := sess.state.Remaining
	if sess.cfg.Infinite {
		remaining = -1
	}

	return &model.AutoBetStatus{
		Running:       sess.running,
		Game:          sess.cfg.Game,
		Strategy:      sess.cfg.Strategy,
		BaseBet:       sess.state.BaseBet,
		CurrentStake:  sess.state.Stake,
		RemainingBets: remaining,
		Infinite:      sess.cfg.Infinite,
		StopNextWin:   sess.state.StopNextWin,
		StopReason:    sess.stopReason,

		SessionProfit:     sess.ledg.SessionProfit,
		TotalBets:         sess.ledg.TotalBets,
		Wins:              sess.ledg.Wins,
		Losses:            sess.ledg.Losses,
		CurrentStreak:     sess.ledg.CurrentStreak,
		WinStreak:         sess.ledg.WinStreak,
		LongestWinStreak:  sess.ledg.LongestWinStreak,
		LongestLossStreak: sess.ledg.LongestLossStreak,
		ProfitHistory:     sess.ledg.History(),
	}, nil
}
