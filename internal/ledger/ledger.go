package ledger

import "charlies_odds_backend/internal/model"

// Вместимость графика прибыли: старые точки вытесняются новыми
const historyCap = 100

// Ledger - статистика одной игровой сессии.
// Чистый редьюсер над потоком рассчитанных ставок, ничего не знает
// о персистентности и играх. Не потокобезопасен, владелец
// синхронизирует доступ сам.
type Ledger struct {
	SessionProfit int64
	TotalBets     int
	Wins          int
	Losses        int

	// Текущая серия одинаковых исходов и её класс
	CurrentStreak int
	WinStreak     bool

	LongestWinStreak  int
	LongestLossStreak int

	history []model.ProfitPoint
}

func New() *Ledger {
	return &Ledger{WinStreak: true}
}

// Record учитывает одну рассчитанную ставку.
// Выигрышем считается payout > stake: выплата ровно в размере ставки
// (пуш) не попадает ни в wins, ни в серию выигрышей.
func (l *Ledger) Record(stake, payout int64) {
	profit := payout - stake
	l.SessionProfit += profit
	l.TotalBets++

	isWin := payout > stake
	if isWin {
		l.Wins++
	} else {
		l.Losses++
	}

	if l.TotalBets == 1 || l.WinStreak != isWin {
		l.CurrentStreak = 1
		l.WinStreak = isWin
	} else {
		l.CurrentStreak++
	}

	if isWin && l.CurrentStreak > l.LongestWinStreak {
		l.LongestWinStreak = l.CurrentStreak
	}
	if !isWin && l.CurrentStreak > l.LongestLossStreak {
		l.LongestLossStreak = l.CurrentStreak
	}

	l.history = append(l.history, model.ProfitPoint{
		Bet:    l.TotalBets,
		Profit: l.SessionProfit,
	})
	if len(l.history) > historyCap {
		l.history = l.history[len(l.history)-historyCap:]
	}
}

// History возвращает копию точек графика прибыли
func (l *Ledger) History() []model.ProfitPoint {
	out := make([]model.ProfitPoint, len(l.history))
	copy(out, l.history)
	return out
}

// Reset обнуляет счётчики и график. Повторный вызов ничего не меняет.
func (l *Ledger) Reset() {
	*l = Ledger{WinStreak: true}
}
