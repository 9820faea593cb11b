package autobet

import (
	"errors"
	"math"

	"charlies_odds_backend/internal/model"
)

// Минимальная ставка: 1 цент. Ниже этого порога ставка не опускается,
// даже если политика уменьшения гонит её к нулю.
const minStake int64 = 1

// Причины остановки серии
const (
	StopManual     = "manual"
	StopNextWin    = "next_win"
	StopProfit     = "profit_target"
	StopLoss       = "loss_limit"
	StopBudget     = "budget_exhausted"
	StopBetFailure = "bet_failed"
)

var ErrBadConfig = errors.New("invalid autobet config")

// State - детерминированный автомат стратегии ставок.
// Владелец (сервис авто-ставок) синхронизирует доступ.
type State struct {
	cfg model.AutoBetConfig

	BaseBet int64
	Stake   int64

	// fibonacci: последовательность расширяется по мере надобности
	fibSeq   []int64
	fibIndex int

	// labouchere: рабочая копия настроенной последовательности
	labouchere []int64

	Remaining   int
	StopNextWin bool
}

// Validate проверяет конфигурацию до старта серии
func Validate(cfg model.AutoBetConfig) error {
	switch cfg.Strategy {
	case model.StrategyFixed, model.StrategyMartingale,
		model.StrategyFibonacci, model.StrategyLabouchere:
	default:
		return ErrBadConfig
	}
	if cfg.Stake < minStake {
		return ErrBadConfig
	}
	if !cfg.Infinite && cfg.MaxBets <= 0 {
		return ErrBadConfig
	}
	return nil
}

// NewState снимает снимок конфигурации на входе в серию:
// текущая ставка фиксируется как базовая, внутренние счётчики
// стратегий сбрасываются.
func NewState(cfg model.AutoBetConfig) *State {
	st := &State{
		cfg:      cfg,
		BaseBet:  cfg.Stake,
		Stake:    cfg.Stake,
		fibSeq:   []int64{1, 1},
		fibIndex: 0,
	}

	seq := cfg.Sequence
	if len(seq) == 0 {
		seq = []int64{1, 2, 3, 4}
	}
	st.labouchere = append([]int64(nil), seq...)

	if cfg.Infinite {
		st.Remaining = -1
	} else {
		st.Remaining = cfg.MaxBets
	}

	if cfg.Strategy == model.StrategyLabouchere {
		st.Stake = st.labouchereStake()
	}

	return st
}

// Next обрабатывает исход только что рассчитанной ставки.
// Возвращает пустую строку, если серия продолжается, иначе причину
// остановки. Порядок проверки стоп-условий фиксирован: сначала
// "остановиться на выигрыше", затем цель прибыли, затем лимит потерь.
func (st *State) Next(won bool, sessionProfit int64) string {
	if st.StopNextWin && won {
		st.StopNextWin = false
		return StopNextWin
	}

	if st.cfg.StopOnProfit && sessionProfit >= st.cfg.StopProfitAmount {
		return StopProfit
	}

	if st.cfg.StopOnLoss && sessionProfit <= -st.cfg.StopLossAmount {
		return StopLoss
	}

	switch st.cfg.Strategy {
	case model.StrategyFixed:
		st.applyFixed(won)
	case model.StrategyMartingale:
		st.applyMartingale(won)
	case model.StrategyFibonacci:
		st.applyFibonacci(won)
	case model.StrategyLabouchere:
		st.applyLabouchere(won)
	}

	if st.Stake < minStake {
		st.Stake = minStake
	}

	if st.Remaining > 0 {
		st.Remaining--
		if st.Remaining == 0 {
			return StopBudget
		}
	}

	return ""
}

// applyFixed применяет политику изменения ставки после исхода.
// Целочисленная арифметика в процентах, как и везде в расчётах выплат.
func (st *State) applyFixed(won bool) {
	policy := st.cfg.OnLoss
	if won {
		policy = st.cfg.OnWin
	}

	switch policy {
	case model.PolicyReset:
		st.Stake = st.BaseBet
	case model.PolicyIncrease:
		st.Stake += st.Stake * st.cfg.IncreaseBy / 100
	case model.PolicyDecrease:
		st.Stake -= st.Stake * st.cfg.DecreaseBy / 100
	}
}

func (st *State) applyMartingale(won bool) {
	if won {
		st.Stake = st.BaseBet
		return
	}
	lossMult := st.cfg.LossMultiplier
	if lossMult <= 1 {
		lossMult = 2
	}
	st.Stake = int64(math.Round(float64(st.Stake) * lossMult))
}

// applyFibonacci двигает индекс по последовательности Фибоначчи:
// проигрыш - шаг вперёд (с расширением таблицы), выигрыш - два шага
// назад с упором в ноль.
func (st *State) applyFibonacci(won bool) {
	if won {
		st.fibIndex -= 2
		if st.fibIndex < 0 {
			st.fibIndex = 0
		}
	} else {
		st.fibIndex++
		for st.fibIndex >= len(st.fibSeq) {
			n := len(st.fibSeq)
			st.fibSeq = append(st.fibSeq, st.fibSeq[n-1]+st.fibSeq[n-2])
		}
	}
	st.Stake = st.BaseBet * st.fibSeq[st.fibIndex]
}

// applyLabouchere: выигрыш снимает первый и последний элементы,
// проигрыш дописывает только что сыгранный множитель в конец.
func (st *State) applyLabouchere(won bool) {
	if won {
		switch len(st.labouchere) {
		case 0:
		case 1:
			st.labouchere = st.labouchere[:0]
		default:
			st.labouchere = st.labouchere[1 : len(st.labouchere)-1]
		}
	} else {
		st.labouchere = append(st.labouchere, st.Stake/st.BaseBet)
	}
	st.Stake = st.labouchereStake()
}

// labouchereStake - ставка по текущей последовательности.
// Пустая последовательность трактуется как [1]: ставка равна базовой,
// серия не застревает.
func (st *State) labouchereStake() int64 {
	n := len(st.labouchere)
	if n == 0 {
		return st.BaseBet
	}
	return st.BaseBet * (st.labouchere[0] + st.labouchere[n-1])
}

// Sequence возвращает копию текущей последовательности labouchere
func (st *State) Sequence() []int64 {
	return append([]int64(nil), st.labouchere...)
}

// FibIndex - текущая позиция в последовательности Фибоначчи
func (st *State) FibIndex() int {
	return st.fibIndex
}
