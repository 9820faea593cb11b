package crash

import (
	"context"
	"math"
	"time"

	"charlies_odds_backend/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// run ведёт раунд до краха либо авто-кэшаута
func (s *serv) run(r *round) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case now := <-ticker.C:
			r.mu.Lock()
			if r.status != model.CrashActive {
				r.mu.Unlock()
				return
			}

			current := r.multiplierAt(now)

			// Авто-кэшаут срабатывает по достижении цели
			if r.autoCashout && current >= r.cashoutAt && r.cashoutAt < r.crashPoint {
				err := s.settleLocked(r, model.CrashCashedOut, r.cashoutAt)
				r.mu.Unlock()
				if err == nil {
					return
				}
				// Расчёт не прошёл, попробуем на следующем тике
				continue
			}

			if now.Sub(r.startedAt) >= r.duration {
				err := s.settleLocked(r, model.CrashCrashed, r.crashPoint)
				r.mu.Unlock()
				if err == nil {
					return
				}
				continue
			}
			r.mu.Unlock()
		}
	}
}

// settleLocked рассчитывает раунд. Вызывается строго под r.mu и только
// при status == active: повторный расчёт исключён.
func (s *serv) settleLocked(r *round, status string, multiplier float64) error {
	payout := int64(0)
	recordMult := 0.0
	if status == model.CrashCashedOut {
		payout = int64(math.Round(float64(r.stake) * multiplier))
		recordMult = multiplier
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var balance int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetUserForUpdate(ctx, r.userID)
		if err != nil {
			return err
		}

		// Ставка уже списана на старте раунда: возвращаем её и
		// применяем итог целиком, чтобы статистика сошлась
		user.Balance += r.stake
		user.ApplyBet(r.stake, payout)
		if err = s.userRepo.ApplyBetOutcome(ctx, user); err != nil {
			return err
		}
		balance = user.Balance

		var cashedOutAt any
		if status == model.CrashCashedOut {
			cashedOutAt = multiplier
		}
		record := model.BetRecord{
			ID:         uuid.NewString(),
			UserID:     r.userID,
			Game:       model.GameCrash,
			Stake:      r.stake,
			Payout:     payout,
			Multiplier: recordMult,
			Result: map[string]any{
				"crash_point":   r.crashPoint,
				"cashed_out_at": cashedOutAt,
				"won":           payout > 0,
			},
			CreatedAt: time.Now(),
		}
		return s.betRepo.CreateBet(ctx, &record)
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"round_id": r.id,
			"user_id":  r.userID,
		}).WithError(err).Error("crash settlement failed")
		return err
	}

	r.status = status
	r.multiplier = multiplier
	r.payout = payout
	r.balance = balance
	return nil
}
