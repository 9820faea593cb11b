package app

import (
	"context"

	accountAPI "charlies_odds_backend/internal/api/account"
	adminAPI "charlies_odds_backend/internal/api/admin"
	authAPI "charlies_odds_backend/internal/api/auth"
	autobetAPI "charlies_odds_backend/internal/api/autobet"
	betAPI "charlies_odds_backend/internal/api/bet"
	crashAPI "charlies_odds_backend/internal/api/crash"
	suggestionAPI "charlies_odds_backend/internal/api/suggestion"
	"charlies_odds_backend/internal/config"
	"charlies_odds_backend/internal/config/env"
	"charlies_odds_backend/internal/games"
	mw "charlies_odds_backend/internal/middleware"
	"charlies_odds_backend/internal/repository"
	"charlies_odds_backend/internal/repository/auth_repo"
	"charlies_odds_backend/internal/repository/bet_repo"
	"charlies_odds_backend/internal/repository/game_settings_repo"
	"charlies_odds_backend/internal/repository/suggestion_repo"
	"charlies_odds_backend/internal/repository/user_repo"
	"charlies_odds_backend/internal/service"
	accountServ "charlies_odds_backend/internal/service/account"
	adminServ "charlies_odds_backend/internal/service/admin"
	authServ "charlies_odds_backend/internal/service/auth"
	autobetServ "charlies_odds_backend/internal/service/autobet"
	betServ "charlies_odds_backend/internal/service/bet"
	crashServ "charlies_odds_backend/internal/service/crash"
	"charlies_odds_backend/internal/service/history"
	suggestionServ "charlies_odds_backend/internal/service/suggestion"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type ServiceProvider struct {
	log *logrus.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Random source
	src games.Source

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authServ service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo    repository.UserRepository
	accountServ service.AccountService
	accountHand *accountAPI.Handler

	// Bet bits
	betRepo      repository.BetRepository
	settingsRepo repository.GameSettingsRepository
	gamesCfg     config.GamesConfig
	betService   service.BetService
	historyServ  service.HistoryService
	betHand      *betAPI.Handler

	// Crash bits
	timingCfg config.TimingConfig
	crashServ service.CrashService
	crashHand *crashAPI.Handler

	// AutoBet bits
	autoBetServ service.AutoBetService
	autoBetHand *autobetAPI.Handler

	// Suggestion bits
	suggestionRepo repository.SuggestionRepository
	suggestionServ service.SuggestionService
	suggestionHand *suggestionAPI.Handler

	// Admin bits
	adminServ service.AdminService
	adminHand *adminAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider(log *logrus.Logger) *ServiceProvider {
	return &ServiceProvider{log: log}
}

func (sp *ServiceProvider) Log() *logrus.Logger {
	return sp.log
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) Source() games.Source {
	if sp.src == nil {
		sp.src = games.NewSource()
	}
	return sp.src
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) GamesCfg() config.GamesConfig {
	if sp.gamesCfg == nil {
		cfg, err := env.NewGamesConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get games config: " + err.Error())
		}
		sp.gamesCfg = cfg
	}
	return sp.gamesCfg
}

func (sp *ServiceProvider) TimingCfg() config.TimingConfig {
	if sp.timingCfg == nil {
		cfg, err := env.NewTimingConfig()
		if err != nil {
			panic("failed to get timing config: " + err.Error())
		}
		sp.timingCfg = cfg
	}
	return sp.timingCfg
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.userRepo
}

func (sp *ServiceProvider) BetRepo(ctx context.Context) repository.BetRepository {
	if sp.betRepo == nil {
		sp.betRepo = bet_repo.NewBetRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.betRepo
}

func (sp *ServiceProvider) GameSettingsRepo(ctx context.Context) repository.GameSettingsRepository {
	if sp.settingsRepo == nil {
		sp.settingsRepo = game_settings_repo.NewGameSettingsRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.settingsRepo
}

func (sp *ServiceProvider) SuggestionRepo(ctx context.Context) repository.SuggestionRepository {
	if sp.suggestionRepo == nil {
		sp.suggestionRepo = suggestion_repo.NewSuggestionRepository(sp.DBClient(ctx), trmpgx.DefaultCtxGetter)
	}
	return sp.suggestionRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = authServ.NewService(sp.TXManager(ctx), sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.JWTCfg())
	}
	return sp.authServ
}

func (sp *ServiceProvider) BetService(ctx context.Context) service.BetService {
	if sp.betService == nil {
		sp.betService = betServ.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.BetRepo(ctx),
			sp.GameSettingsRepo(ctx),
			sp.Source(),
			sp.log,
		)
	}
	return sp.betService
}

func (sp *ServiceProvider) HistoryService(ctx context.Context) service.HistoryService {
	if sp.historyServ == nil {
		sp.historyServ = history.NewService(sp.BetRepo(ctx))
	}
	return sp.historyServ
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = accountServ.NewService(sp.TXManager(ctx), sp.UserRepo(ctx))
	}
	return sp.accountServ
}

func (sp *ServiceProvider) CrashService(ctx context.Context) service.CrashService {
	if sp.crashServ == nil {
		sp.crashServ = crashServ.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.BetRepo(ctx),
			sp.GameSettingsRepo(ctx),
			sp.Source(),
			sp.log,
			sp.TimingCfg().CrashTick(),
		)
	}
	return sp.crashServ
}

func (sp *ServiceProvider) AutoBetService(ctx context.Context) service.AutoBetService {
	if sp.autoBetServ == nil {
		sp.autoBetServ = autobetServ.NewService(
			sp.BetService(ctx),
			sp.log,
			sp.TimingCfg().AutoBetDelay(),
			sp.TimingCfg().AutoBetInstantDelay(),
		)
	}
	return sp.autoBetServ
}

func (sp *ServiceProvider) SuggestionService(ctx context.Context) service.SuggestionService {
	if sp.suggestionServ == nil {
		sp.suggestionServ = suggestionServ.NewService(sp.SuggestionRepo(ctx))
	}
	return sp.suggestionServ
}

func (sp *ServiceProvider) AdminService(ctx context.Context) service.AdminService {
	if sp.adminServ == nil {
		sp.adminServ = adminServ.NewService(
			sp.UserRepo(ctx),
			sp.GameSettingsRepo(ctx),
			sp.SuggestionRepo(ctx),
			sp.log,
		)
	}
	return sp.adminServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
			Log:  sp.log,
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) BetHandler(ctx context.Context) *betAPI.Handler {
	if sp.betHand == nil {
		sp.betHand = betAPI.NewHandler(betAPI.HandlerDeps{
			Serv:    sp.BetService(ctx),
			History: sp.HistoryService(ctx),
		})
	}
	return sp.betHand
}

func (sp *ServiceProvider) CrashHandler(ctx context.Context) *crashAPI.Handler {
	if sp.crashHand == nil {
		sp.crashHand = crashAPI.NewHandler(crashAPI.HandlerDeps{Serv: sp.CrashService(ctx)})
	}
	return sp.crashHand
}

func (sp *ServiceProvider) AutoBetHandler(ctx context.Context) *autobetAPI.Handler {
	if sp.autoBetHand == nil {
		sp.autoBetHand = autobetAPI.NewHandler(autobetAPI.HandlerDeps{Serv: sp.AutoBetService(ctx)})
	}
	return sp.autoBetHand
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{Serv: sp.AccountService(ctx)})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) SuggestionHandler(ctx context.Context) *suggestionAPI.Handler {
	if sp.suggestionHand == nil {
		sp.suggestionHand = suggestionAPI.NewHandler(suggestionAPI.HandlerDeps{
			Serv:    sp.SuggestionService(ctx),
			Account: sp.AccountService(ctx),
		})
	}
	return sp.suggestionHand
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{Serv: sp.AdminService(ctx)})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Всё остальное только с access токеном
		r.Group(func(rr chi.Router) {
			rr.Use(mw.Auth(sp.JWTCfg()))

			betHandler := sp.BetHandler(ctx)
			rr.Route("/bets", func(b chi.Router) {
				b.Post("/", betHandler.Place)
				b.Get("/history", betHandler.History)
				b.Delete("/history", betHandler.ClearHistory)
			})

			crashHandler := sp.CrashHandler(ctx)
			rr.Route("/crash", func(c chi.Router) {
				c.Post("/start", crashHandler.Start)
				c.Post("/cashout", crashHandler.Cashout)
				c.Get("/state", crashHandler.State)
			})

			autoBetHandler := sp.AutoBetHandler(ctx)
			rr.Route("/autobet", func(a chi.Router) {
				a.Post("/start", autoBetHandler.Start)
				a.Post("/stop", autoBetHandler.Stop)
				a.Post("/stop-next-win", autoBetHandler.StopOnNextWin)
				a.Get("/status", autoBetHandler.Status)
			})

			accountHandler := sp.AccountHandler(ctx)
			rr.Route("/account", func(a chi.Router) {
				a.Get("/", accountHandler.Profile)
				a.Post("/daily-bonus", accountHandler.DailyBonus)
				a.Put("/currency", accountHandler.SetCurrency)
			})

			suggestionHandler := sp.SuggestionHandler(ctx)
			rr.Route("/suggestions", func(sg chi.Router) {
				sg.Get("/", suggestionHandler.List)
				sg.Post("/", suggestionHandler.Create)
				sg.Post("/{id}/vote", suggestionHandler.Vote)
			})

			// Админка
			adminHandler := sp.AdminHandler(ctx)
			rr.Route("/admin", func(a chi.Router) {
				a.Use(mw.AdminOnly)
				a.Get("/users", adminHandler.Users)
				a.Put("/users/{id}/balance", adminHandler.SetBalance)
				a.Delete("/users/{id}", adminHandler.DeleteUser)
				a.Get("/games", adminHandler.GameSettings)
				a.Put("/games/{game}", adminHandler.UpdateGameSettings)
				a.Put("/suggestions/{id}/status", adminHandler.SetSuggestionStatus)
			})
		})

		sp.router = r
	}

	return sp.router
}
