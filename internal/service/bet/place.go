package bet

import (
	"context"
	"math"
	"time"

	"charlies_odds_backend/internal/games"
	"charlies_odds_backend/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func (s *serv) Place(ctx context.Context, userID int, req model.BetRequest) (*model.BetResult, error) {
	// Игра должна существовать
	game, err := games.ByName(req.Game)
	if err != nil {
		return nil, ErrUnknownGame
	}

	// Настройки игры: включена ли, границы ставки, преимущество казино
	settings, err := s.settingsRepo.GetSettings(ctx, req.Game)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, ErrGameDisabled
	}
	if req.Stake < settings.MinBet || req.Stake > settings.MaxBet {
		return nil, ErrBetOutOfRange
	}
	req.Params.HouseEdge = settings.HouseEdge

	var result *model.BetResult

	// Начало транзакции: проверка баланса, розыгрыш и расчёт атомарны
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Читаем пользователя с блокировкой строки
		user, err := s.userRepo.GetUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}

		// 2. Ставка не может превышать баланс
		if req.Stake > user.Balance {
			return ErrInsufficientBalance
		}

		// 3. Розыгрыш
		outcome, err := game.Play(s.src, req.Params)
		if err != nil {
			return err
		}
		payout := int64(math.Round(float64(req.Stake) * outcome.Multiplier))

		// 4. Применяем итог к аккаунту
		user.ApplyBet(req.Stake, payout)
		if err = s.userRepo.ApplyBetOutcome(ctx, user); err != nil {
			return err
		}

		// 5. Пишем запись в историю и подрезаем хвост
		record := model.BetRecord{
			ID:         uuid.NewString(),
			UserID:     userID,
			Game:       req.Game,
			Stake:      req.Stake,
			Payout:     payout,
			Multiplier: outcome.Multiplier,
			Result:     outcome.Payload,
			CreatedAt:  time.Now(),
		}
		if err = s.betRepo.CreateBet(ctx, &record); err != nil {
			return err
		}
		if err = s.betRepo.TrimHistory(ctx, userID, historyKeep); err != nil {
			return err
		}

		result = &model.BetResult{
			Record:     record,
			Balance:    user.Balance,
			Level:      user.Level,
			Experience: user.Experience,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"game":    req.Game,
		"stake":   req.Stake,
		"payout":  result.Record.Payout,
	}).Debug("bet settled")

	return result, nil
}
