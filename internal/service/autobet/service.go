package autobet

import (
	"errors"
	"sync"
	"time"

	strategy "charlies_odds_backend/internal/autobet"
	"charlies_odds_backend/internal/ledger"
	"charlies_odds_backend/internal/model"
	"charlies_odds_backend/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrSessionActive = errors.New("autobet session already active")
	ErrNoSession     = errors.New("no autobet session")
)

// session - одна серия авто-ставок. Доступ к полям только под mu.
type session struct {
	mu sync.Mutex

	cfg   model.AutoBetConfig
	state *strategy.State
	ledg  *ledger.Ledger

	running    bool
	stopping   bool
	stopReason string
	stop       chan struct{}
}

type serv struct {
	betServ service.BetService
	log     *logrus.Logger

	// Пауза между ставками в серии
	delay        time.Duration
	instantDelay time.Duration

	mu       sync.Mutex
	sessions map[int]*session // последняя серия каждого пользователя
}

func NewService(betServ service.BetService, log *logrus.Logger, delay, instantDelay time.Duration) *serv {
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	if instantDelay <= 0 {
		instantDelay = 100 * time.Millisecond
	}
	return &serv{
		betServ:      betServ,
		log:          log,
		delay:        delay,
		instantDelay: instantDelay,
		sessions:     make(map[int]*session),
	}
}
