package autobet

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	strategy "charlies_odds_backend/internal/autobet"
	"charlies_odds_backend/internal/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedBetService отыгрывает заданную последовательность исходов.
// Выигрыш платит 2x, после конца сценария повторяется последний исход.
type scriptedBetService struct {
	mu     sync.Mutex
	script []bool
	i      int
	stakes []int64
	err    error
}

func (f *scriptedBetService) Place(_ context.Context, _ int, req model.BetRequest) (*model.BetResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}

	won := false
	if f.i < len(f.script) {
		won = f.script[f.i]
	} else if len(f.script) > 0 {
		won = f.script[len(f.script)-1]
	}
	f.i++
	f.stakes = append(f.stakes, req.Stake)

	payout := int64(0)
	if won {
		payout = req.Stake * 2
	}
	return &model.BetResult{
		Record: model.BetRecord{Game: req.Game, Stake: req.Stake, Payout: payout},
	}, nil
}

func (f *scriptedBetService) placedStakes() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.stakes...)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newServ(bets *scriptedBetService) *serv {
	return NewService(bets, testLogger(), time.Millisecond, time.Millisecond)
}

// waitFinished ждёт завершения серии и возвращает финальный статус
func waitFinished(t *testing.T, s *serv, userID int) *model.AutoBetStatus {
	t.Helper()
	require.Eventually(t, func() bool {
		st, err := s.Status(context.Background(), userID)
		return err == nil && !st.Running
	}, 3*time.Second, 2*time.Millisecond)

	st, err := s.Status(context.Background(), userID)
	require.NoError(t, err)
	return st
}

func TestAutoBetMartingaleRun(t *testing.T) {
	bets := &scriptedBetService{script: []bool{false, false, true}}
	s := newServ(bets)

	err := s.Start(context.Background(), 1, model.AutoBetConfig{
		Game:           model.GameDice,
		Stake:          1_000,
		Strategy:       model.StrategyMartingale,
		LossMultiplier: 2,
		MaxBets:        3,
	})
	require.NoError(t, err)

	st := waitFinished(t, s, 1)

	assert.Equal(t, strategy.StopBudget, st.StopReason)
	assert.Equal(t, []int64{1_000, 2_000, 4_000}, bets.placedStakes())
	assert.Equal(t, 3, st.TotalBets)
	assert.Equal(t, 1, st.Wins)
	assert.Equal(t, 2, st.Losses)
	// -1000 - 2000 + 4000
	assert.Equal(t, int64(1_000), st.SessionProfit)
	assert.Len(t, st.ProfitHistory, 3)
}

func TestAutoBetStopOnProfit(t *testing.T) {
	bets := &scriptedBetService{script: []bool{true}}
	s := newServ(bets)

	err := s.Start(context.Background(), 1, model.AutoBetConfig{
		Game:             model.GameDice,
		Stake:            1_000,
		Strategy:         model.StrategyFixed,
		StopOnProfit:     true,
		StopProfitAmount: 1_000,
		Infinite:         true,
	})
	require.NoError(t, err)

	st := waitFinished(t, s, 1)

	assert.Equal(t, strategy.StopProfit, st.StopReason)
	assert.Equal(t, 1, st.TotalBets)
	assert.Equal(t, int64(1_000), st.SessionProfit)
}

func TestAutoBetStopOnLoss(t *testing.T) {
	bets := &scriptedBetService{script: []bool{false}}
	s := newServ(bets)

	err := s.Start(context.Background(), 1, model.AutoBetConfig{
		Game:           model.GameDice,
		Stake:          1_000,
		Strategy:       model.StrategyFixed,
		StopOnLoss:     true,
		StopLossAmount: 2_000,
		Infinite:       true,
	})
	require.NoError(t, err)

	st := waitFinished(t, s, 1)

	assert.Equal(t, strategy.StopLoss, st.StopReason)
	assert.Equal(t, 2, st.TotalBets)
	assert.Equal(t, int64(-2_000), st.SessionProfit)
}

func TestAutoBetManualStop(t *testing.T) {
	bets := &scriptedBetService{script: []bool{false}}
	s := newServ(bets)

	err := s.Start(context.Background(), 1, model.AutoBetConfig{
		Game:     model.GameDice,
		Stake:    1_000,
		Strategy: model.StrategyFixed,
		Infinite: true,
	})
	require.NoError(t, err)

	require.NoError(t, s.Stop(context.Background(), 1))

	st := waitFinished(t, s, 1)
	assert.Equal(t, strategy.StopManual, st.StopReason)

	// Повторная остановка завершённой серии не проходит
	assert.ErrorIs(t, s.Stop(context.Background(), 1), ErrNoSession)
}

func TestAutoBetStopOnNextWin(t *testing.T) {
	script := make([]bool, 21)
	script[20] = true // двадцать проигрышей, затем выигрыши
	bets := &scriptedBetService{script: script}
	s := newServ(bets)

	err := s.Start(context.Background(), 1, model.AutoBetConfig{
		Game:     model.GameDice,
		Stake:    1_000,
		Strategy: model.StrategyFixed,
		OnLoss:   model.PolicyReset,
		Infinite: true,
	})
	require.NoError(t, err)
	require.NoError(t, s.StopOnNextWin(context.Background(), 1))

	st := waitFinished(t, s, 1)

	assert.Equal(t, strategy.StopNextWin, st.StopReason)
	assert.Equal(t, 1, st.Wins)
}

func TestAutoBetStopsOnFailedBet(t *testing.T) {
	bets := &scriptedBetService{err: errors.New("insufficient balance")}
	s := newServ(bets)

	err := s.Start(context.Background(), 1, model.AutoBetConfig{
		Game:     model.GameDice,
		Stake:    1_000,
		Strategy: model.StrategyFixed,
		Infinite: true,
	})
	require.NoError(t, err)

	st := waitFinished(t, s, 1)

	assert.Equal(t, strategy.StopBetFailure, st.StopReason)
	assert.Zero(t, st.TotalBets)
}

func TestAutoBetSingleSession(t *testing.T) {
	bets := &scriptedBetService{script: []bool{false}}
	s := newServ(bets)

	cfg := model.AutoBetConfig{
		Game:     model.GameDice,
		Stake:    1_000,
		Strategy: model.StrategyFixed,
		Infinite: true,
	}

	require.NoError(t, s.Start(context.Background(), 1, cfg))
	assert.ErrorIs(t, s.Start(context.Background(), 1, cfg), ErrSessionActive)

	// После завершения серии можно запускать новую
	require.NoError(t, s.Stop(context.Background(), 1))
	waitFinished(t, s, 1)
	assert.NoError(t, s.Start(context.Background(), 1, cfg))
}

func TestAutoBetRejectsBadConfig(t *testing.T) {
	s := newServ(&scriptedBetService{})

	err := s.Start(context.Background(), 1, model.AutoBetConfig{
		Game:     model.GameDice,
		Stake:    1_000,
		Strategy: "dalembert",
		Infinite: true,
	})
	assert.ErrorIs(t, err, strategy.ErrBadConfig)

	err = s.Start(context.Background(), 1, model.AutoBetConfig{
		Game:     "roulette",
		Stake:    1_000,
		Strategy: model.StrategyFixed,
		Infinite: true,
	})
	assert.Error(t, err)
}

func TestAutoBetStatusNoSession(t *testing.T) {
	s := newServ(&scriptedBetService{})

	_, err := s.Status(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoSession)
}
