package account

import (
	"context"
	"time"
)

// sameDay - один календарный день в локальном времени сервера
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (s *serv) ClaimDailyBonus(ctx context.Context, userID int) (int64, int64, error) {
	var (
		bonus   int64
		balance int64
	)

	// Начало транзакции: повторный запрос в тот же день не пройдёт
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Читаем пользователя с блокировкой строки
		user, err := s.userRepo.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		// 2. Бонус выдаётся раз в календарный день
		now := time.Now()
		if user.LastBonusDay != nil && sameDay(*user.LastBonusDay, now) {
			return ErrBonusAlreadyClaimed
		}

		// 3. Начисляем бонус по уровню
		bonus = BonusForLevel(user.Level)
		balance = user.Balance + bonus

		return s.userRepo.SetLastBonusDay(ctx, userID, now, balance)
	})
	if err != nil {
		return 0, 0, err
	}

	return bonus, balance, nil
}
