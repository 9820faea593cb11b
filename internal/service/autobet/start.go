package autobet

import (
	"context"

	strategy "charlies_odds_backend/internal/autobet"
	"charlies_odds_backend/internal/games"
	"charlies_odds_backend/internal/ledger"
	"charlies_odds_backend/internal/model"
)

func (s *serv) Start(ctx context.Context, userID int, cfg model.AutoBetConfig) error {
	if err := strategy.Validate(cfg); err != nil {
		return err
	}
	if _, err := games.ByName(cfg.Game); err != nil {
		return strategy.ErrBadConfig
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.sessions[userID]; ok {
		prev.mu.Lock()
		running := prev.running
		prev.mu.Unlock()
		if running {
			return ErrSessionActive
		}
	}

	sess := &session{
		cfg:     cfg,
		state:   strategy.NewState(cfg),
		ledg:    ledger.New(),
		running: true,
		stop:    make(chan struct{}),
	}
	s.sessions[userID] = sess

	go s.run(userID, sess)

	return nil
}

func (s *serv) Stop(ctx context.Context, userID int) error {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	s.mu.Unlock()
	if !ok {
		return ErrNoSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !sess.running || sess.stopping {
		return ErrNoSession
	}

	sess.stopping = true
	close(sess.stop)
	return nil
}

// StopOnNextWin помечает серию: остановиться после первого выигрыша
func (s *serv) StopOnNextWin(ctx context.Context, userID int) error {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	s.mu.Unlock()
	if !ok {
		return ErrNoSession
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if !sess.running {
		return ErrNoSession
	}

	sess.state.StopNextWin = true
	return nil
}
