package crash

import (
	"errors"
	"sync"
	"time"

	"charlies_odds_backend/internal/games"
	"charlies_odds_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/sirupsen/logrus"
)

// Раунд длится crashPoint секунд, но не дольше потолка
const maxRoundDuration = 10 * time.Second

var (
	ErrRoundActive         = errors.New("crash round already active")
	ErrNoRound             = errors.New("no crash round")
	ErrRoundOver           = errors.New("crash round is over")
	ErrBetOutOfRange       = errors.New("bet amount out of range")
	ErrGameDisabled        = errors.New("game is disabled")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// round - состояние одного раунда. Доступ только под mu.
// Смена status - единственная точка расчёта: раунд рассчитывается
// ровно один раз, кто бы ни успел первым - тикер или игрок.
type round struct {
	mu sync.Mutex

	id          string
	userID      int
	stake       int64
	crashPoint  float64
	startedAt   time.Time
	duration    time.Duration
	autoCashout bool
	cashoutAt   float64

	status     string
	multiplier float64
	payout     int64
	balance    int64

	stop chan struct{}
}

type serv struct {
	txManager    trm.Manager
	userRepo     repository.UserRepository
	betRepo      repository.BetRepository
	settingsRepo repository.GameSettingsRepository
	src          games.Source
	log          *logrus.Logger

	tick time.Duration

	mu     sync.Mutex
	rounds map[int]*round // последний раунд каждого пользователя
}

func NewService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	betRepo repository.BetRepository,
	settingsRepo repository.GameSettingsRepository,
	src games.Source,
	log *logrus.Logger,
	tick time.Duration,
) *serv {
	if tick <= 0 {
		tick = 50 * time.Millisecond
	}
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		betRepo:      betRepo,
		settingsRepo: settingsRepo,
		src:          src,
		log:          log,
		tick:         tick,
		rounds:       make(map[int]*round),
	}
}

// multiplierAt - текущий множитель: линейный рост от 1 до точки краха
func (r *round) multiplierAt(now time.Time) float64 {
	progress := float64(now.Sub(r.startedAt)) / float64(r.duration)
	if progress >= 1 {
		return r.crashPoint
	}
	return 1 + (r.crashPoint-1)*progress
}
