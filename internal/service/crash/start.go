package crash

import (
	"context"
	"time"

	"charlies_odds_backend/internal/games"
	"charlies_odds_backend/internal/model"

	"github.com/google/uuid"
)

func (s *serv) Start(ctx context.Context, userID int, req model.CrashStart) (*model.CrashState, error) {
	// Настройки игры
	settings, err := s.settingsRepo.GetSettings(ctx, model.GameCrash)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, ErrGameDisabled
	}
	if req.Stake < settings.MinBet || req.Stake > settings.MaxBet {
		return nil, ErrBetOutOfRange
	}

	// У пользователя может быть только один активный раунд
	s.mu.Lock()
	if prev, ok := s.rounds[userID]; ok {
		prev.mu.Lock()
		active := prev.status == model.CrashActive
		prev.mu.Unlock()
		if active {
			s.mu.Unlock()
			return nil, ErrRoundActive
		}
	}
	s.mu.Unlock()

	// Списываем ставку до старта раунда
	var balance int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if req.Stake > user.Balance {
			return ErrInsufficientBalance
		}
		balance = user.Balance - req.Stake
		return s.userRepo.UpdateBalance(ctx, userID, balance)
	})
	if err != nil {
		return nil, err
	}

	// Раскрываем точку краха только после завершения раунда
	crashPoint := games.CrashPoint(s.src)
	duration := time.Duration(crashPoint * float64(time.Second))
	if duration > maxRoundDuration {
		duration = maxRoundDuration
	}

	r := &round{
		id:          uuid.NewString(),
		userID:      userID,
		stake:       req.Stake,
		crashPoint:  crashPoint,
		startedAt:   time.Now(),
		duration:    duration,
		autoCashout: req.AutoCashout,
		cashoutAt:   req.CashoutAt,
		status:      model.CrashActive,
		multiplier:  1,
		stop:        make(chan struct{}),
	}

	s.mu.Lock()
	s.rounds[userID] = r
	s.mu.Unlock()

	go s.run(r)

	return &model.CrashState{
		RoundID:    r.id,
		Status:     model.CrashActive,
		Multiplier: 1,
		Stake:      req.Stake,
		Balance:    balance,
	}, nil
}
