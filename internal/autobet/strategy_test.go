package autobet

import (
	"testing"

	"charlies_odds_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	base := model.AutoBetConfig{
		Game:     model.GameDice,
		Stake:    100,
		Strategy: model.StrategyFixed,
		MaxBets:  10,
	}

	assert.NoError(t, Validate(base))

	bad := base
	bad.Strategy = "dalembert"
	assert.ErrorIs(t, Validate(bad), ErrBadConfig)

	bad = base
	bad.Stake = 0
	assert.ErrorIs(t, Validate(bad), ErrBadConfig)

	bad = base
	bad.MaxBets = 0
	assert.ErrorIs(t, Validate(bad), ErrBadConfig)

	// Бесконечная серия не требует бюджета
	bad.Infinite = true
	assert.NoError(t, Validate(bad))
}

func TestFixedPolicies(t *testing.T) {
	st := NewState(model.AutoBetConfig{
		Stake:      1000,
		Strategy:   model.StrategyFixed,
		OnWin:      model.PolicyIncrease,
		OnLoss:     model.PolicyReset,
		IncreaseBy: 100,
		Infinite:   true,
	})

	require.Empty(t, st.Next(true, 0))
	assert.Equal(t, int64(2000), st.Stake)

	require.Empty(t, st.Next(true, 0))
	assert.Equal(t, int64(4000), st.Stake)

	require.Empty(t, st.Next(false, 0))
	assert.Equal(t, int64(1000), st.Stake)
}

func TestFixedDecreaseClampsToMinStake(t *testing.T) {
	st := NewState(model.AutoBetConfig{
		Stake:      1,
		Strategy:   model.StrategyFixed,
		OnWin:      model.PolicyDecrease,
		OnLoss:     model.PolicyDecrease,
		DecreaseBy: 100,
		Infinite:   true,
	})

	require.Empty(t, st.Next(false, 0))
	assert.Equal(t, int64(1), st.Stake)
}

func TestMartingale(t *testing.T) {
	st := NewState(model.AutoBetConfig{
		Stake:          1000,
		Strategy:       model.StrategyMartingale,
		LossMultiplier: 2,
		Infinite:       true,
	})

	require.Empty(t, st.Next(false, -1000))
	assert.Equal(t, int64(2000), st.Stake)

	require.Empty(t, st.Next(false, -3000))
	assert.Equal(t, int64(4000), st.Stake)

	require.Empty(t, st.Next(true, 1000))
	assert.Equal(t, int64(1000), st.Stake)
}

func TestMartingaleDefaultMultiplier(t *testing.T) {
	st := NewState(model.AutoBetConfig{
		Stake:    500,
		Strategy: model.StrategyMartingale,
		Infinite: true,
	})

	require.Empty(t, st.Next(false, 0))
	assert.Equal(t, int64(1000), st.Stake)
}

func TestFibonacci(t *testing.T) {
	st := NewState(model.AutoBetConfig{
		Stake:    100,
		Strategy: model.StrategyFibonacci,
		Infinite: true,
	})

	assert.Equal(t, int64(100), st.Stake)

	// Проигрыши двигают индекс вперёд: 1, 1, 2, 3, 5
	require.Empty(t, st.Next(false, 0))
	assert.Equal(t, int64(100), st.Stake) // fib[1] = 1

	require.Empty(t, st.Next(false, 0))
	assert.Equal(t, int64(200), st.Stake) // fib[2] = 2

	require.Empty(t, st.Next(false, 0))
	assert.Equal(t, int64(300), st.Stake) // fib[3] = 3
	assert.Equal(t, 3, st.FibIndex())

	require.Empty(t, st.Next(false, 0))
	assert.Equal(t, int64(500), st.Stake) // fib[4] = 5

	// Выигрыш - два шага назад
	require.Empty(t, st.Next(true, 0))
	assert.Equal(t, 2, st.FibIndex())
	assert.Equal(t, int64(200), st.Stake)

	// Ещё выигрыш - упор в начало
	require.Empty(t, st.Next(true, 0))
	assert.Equal(t, 0, st.FibIndex())
	assert.Equal(t, int64(100), st.Stake)

	require.Empty(t, st.Next(true, 0))
	assert.Equal(t, 0, st.FibIndex())
}

func TestLabouchere(t *testing.T) {
	st := NewState(model.AutoBetConfig{
		Stake:    100,
		Strategy: model.StrategyLabouchere,
		Sequence: []int64{1, 2, 3, 4},
		Infinite: true,
	})

	// Исходная ставка: base * (1 + 4)
	assert.Equal(t, int64(500), st.Stake)

	// Выигрыш снимает первый и последний элементы
	require.Empty(t, st.Next(true, 0))
	assert.Equal(t, []int64{2, 3}, st.Sequence())
	assert.Equal(t, int64(500), st.Stake)

	// Последовательность опустела - ставка возвращается к базовой
	require.Empty(t, st.Next(true, 0))
	assert.Empty(t, st.Sequence())
	assert.Equal(t, int64(100), st.Stake)

	// Проигрыш дописывает сыгранный множитель в конец
	require.Empty(t, st.Next(false, 0))
	assert.Equal(t, []int64{1}, st.Sequence())
	assert.Equal(t, int64(200), st.Stake)

	require.Empty(t, st.Next(false, 0))
	assert.Equal(t, []int64{1, 2}, st.Sequence())
	assert.Equal(t, int64(300), st.Stake)
}

func TestLabouchereDefaultSequence(t *testing.T) {
	st := NewState(model.AutoBetConfig{
		Stake:    100,
		Strategy: model.StrategyLabouchere,
		Infinite: true,
	})

	assert.Equal(t, []int64{1, 2, 3, 4}, st.Sequence())
	assert.Equal(t, int64(500), st.Stake)
}

func TestLabouchereSingleElement(t *testing.T) {
	st := NewState(model.AutoBetConfig{
		Stake:    100,
		Strategy: model.StrategyLabouchere,
		Sequence: []int64{3},
		Infinite: true,
	})

	// Один элемент считается и первым, и последним
	assert.Equal(t, int64(600), st.Stake)

	require.Empty(t, st.Next(true, 0))
	assert.Empty(t, st.Sequence())
	assert.Equal(t, int64(100), st.Stake)
}

func TestStopConditionOrder(t *testing.T) {
	cfg := model.AutoBetConfig{
		Stake:            100,
		Strategy:         model.StrategyFixed,
		StopOnProfit:     true,
		StopProfitAmount: 1000,
		StopOnLoss:       true,
		StopLossAmount:   1000,
		Infinite:         true,
	}

	// "Остановиться на выигрыше" проверяется раньше цели прибыли
	st := NewState(cfg)
	st.StopNextWin = true
	assert.Equal(t, StopNextWin, st.Next(true, 5000))

	// Флаг срабатывает только на выигрыше
	st = NewState(cfg)
	st.StopNextWin = true
	assert.Equal(t, StopLoss, st.Next(false, -1000))
	assert.True(t, st.StopNextWin)

	st = NewState(cfg)
	assert.Equal(t, StopProfit, st.Next(true, 1000))

	st = NewState(cfg)
	assert.Equal(t, StopLoss, st.Next(false, -1500))

	st = NewState(cfg)
	assert.Empty(t, st.Next(true, 999))
}

func TestBudgetExhaustion(t *testing.T) {
	st := NewState(model.AutoBetConfig{
		Stake:    100,
		Strategy: model.StrategyFixed,
		MaxBets:  2,
	})

	assert.Equal(t, 2, st.Remaining)
	assert.Empty(t, st.Next(true, 0))
	assert.Equal(t, 1, st.Remaining)
	assert.Equal(t, StopBudget, st.Next(false, 0))
}

func TestInfiniteNeverExhausts(t *testing.T) {
	st := NewState(model.AutoBetConfig{
		Stake:    100,
		Strategy: model.StrategyFixed,
		Infinite: true,
	})

	require.Equal(t, -1, st.Remaining)
	for i := 0; i < 50; i++ {
		require.Empty(t, st.Next(i%2 == 0, 0))
	}
	assert.Equal(t, -1, st.Remaining)
}
