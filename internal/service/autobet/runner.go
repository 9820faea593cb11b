package autobet

import (
	"context"
	"time"

	strategy "charlies_odds_backend/internal/autobet"
	"charlies_odds_backend/internal/model"

	"github.com/sirupsen/logrus"
)

// run крутит серию до стоп-условия либо ручной остановки
func (s *serv) run(userID int, sess *session) {
	delay := s.delay
	if sess.cfg.Instant {
		delay = s.instantDelay
	}

	for {
		select {
		case <-sess.stop:
			s.finish(userID, sess, strategy.StopManual)
			return
		default:
		}

		sess.mu.Lock()
		stake := sess.state.Stake
		sess.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		res, err := s.betServ.Place(ctx, userID, model.BetRequest{
			Game:   sess.cfg.Game,
			Stake:  stake,
			Params: sess.cfg.Params,
		})
		cancel()
		if err != nil {
			// Баланс кончился или ставка вышла за пределы игры
			s.log.WithFields(logrus.Fields{
				"user_id": userID,
				"stake":   stake,
			}).WithError(err).Warn("autobet stopped on failed bet")
			s.finish(userID, sess, strategy.StopBetFailure)
			return
		}

		sess.mu.Lock()
		sess.ledg.Record(stake, res.Record.Payout)
		won := res.Record.Payout > stake
		reason := sess.state.Next(won, sess.ledg.SessionProfit)
		sess.mu.Unlock()

		if reason != "" {
			s.finish(userID, sess, reason)
			return
		}

		select {
		case <-sess.stop:
			s.finish(userID, sess, strategy.StopManual)
			return
		case <-time.After(delay):
		}
	}
}

func (s *serv) finish(userID int, sess *session, reason string) {
	sess.mu.Lock()
	sess.running = false
	sess.stopReason = reason
	sess.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"reason":  reason,
	}).Info("autobet session finished")
}
