package user_repo

import (
	"context"
	"errors"
	"time"

	"charlies_odds_backend/internal/model"
	"charlies_odds_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "users"
	colID           = "id"
	colUsername     = "username"
	colEmail        = "email"
	colPasswordHash = "password_hash"
	colBalance      = "balance"
	colIsAdmin      = "is_admin"
	colCurrency     = "currency"
	colLevel        = "level"
	colExperience   = "experience"
	colLastBonusDay = "last_bonus_day"
	colCreatedAt    = "created_at"

	colTotalBets    = "total_bets"
	colTotalWins    = "total_wins"
	colTotalLosses  = "total_losses"
	colTotalWagered = "total_wagered"
	colTotalWon     = "total_won"
	colBiggestWin   = "biggest_win"
	colBiggestLoss  = "biggest_loss"
)

var userColumns = []string{
	colID, colUsername, colEmail, colPasswordHash, colBalance,
	colIsAdmin, colCurrency, colLevel, colExperience, colLastBonusDay,
	colCreatedAt, colTotalBets, colTotalWins, colTotalLosses,
	colTotalWagered, colTotalWon, colBiggestWin, colBiggestLoss,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUsername, colEmail, colPasswordHash, colBalance, colIsAdmin, colCurrency, colLevel, colExperience).
		Values(user.Username, user.Email, user.Password, user.Balance, user.IsAdmin, user.Currency, user.Level, user.Experience).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetUserByLogin - ищет пользователя по email либо имени,
// без учёта регистра
func (r *repo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	where := sq.Or{
		sq.Expr("LOWER("+colEmail+") = LOWER(?)", login),
		sq.Expr("LOWER("+colUsername+") = LOWER(?)", login),
	}
	return r.getOne(ctx, where, false)
}

// GetUserByID - возвращает модель пользователя по его ID
func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return r.getOne(ctx, sq.Eq{colID: id}, false)
}

// GetUserForUpdate - читает пользователя с блокировкой строки.
// Работает только внутри транзакции менеджера
func (r *repo) GetUserForUpdate(ctx context.Context, id int) (*model.User, error) {
	return r.getOne(ctx, sq.Eq{colID: id}, true)
}

func (r *repo) getOne(ctx context.Context, where sq.Sqlizer, forUpdate bool) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(userColumns...).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	row := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Balance,
		&user.IsAdmin, &user.Currency, &user.Level, &user.Experience, &user.LastBonusDay,
		&user.CreatedAt, &user.Stats.TotalBets, &user.Stats.TotalWins, &user.Stats.TotalLosses,
		&user.Stats.TotalWagered, &user.Stats.TotalWon, &user.Stats.BiggestWin, &user.Stats.BiggestLoss,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// UpdateBalance - обновляет баланс пользователя.
// Принимает ID пользователя и новую сумму баланса
func (r *repo) UpdateBalance(ctx context.Context, id int, balance int64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, balance).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// ApplyBetOutcome - записывает итог ставки в аккаунт: баланс,
// уровень, опыт и статистику одним запросом
func (r *repo) ApplyBetOutcome(ctx context.Context, user *model.User) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, user.Balance).
		Set(colLevel, user.Level).
		Set(colExperience, user.Experience).
		Set(colTotalBets, user.Stats.TotalBets).
		Set(colTotalWins, user.Stats.TotalWins).
		Set(colTotalLosses, user.Stats.TotalLosses).
		Set(colTotalWagered, user.Stats.TotalWagered).
		Set(colTotalWon, user.Stats.TotalWon).
		Set(colBiggestWin, user.Stats.BiggestWin).
		Set(colBiggestLoss, user.Stats.BiggestLoss).
		Where(sq.Eq{colID: user.ID}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// UpdateCurrency - меняет валюту отображения баланса
func (r *repo) UpdateCurrency(ctx context.Context, id int, currency string) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colCurrency, currency).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// SetLastBonusDay - фиксирует день получения ежедневного бонуса
// вместе с новым балансом
func (r *repo) SetLastBonusDay(ctx context.Context, id int, day time.Time, balance int64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colLastBonusDay, day).
		Set(colBalance, balance).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

// ListUsers - возвращает всех пользователей, сортировка по ID
func (r *repo) ListUsers(ctx context.Context) ([]*model.User, error) {
	// Формируем запрос
	query := sq.Select(userColumns...).
		From(table).
		OrderBy(colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// DeleteUser - удаляет пользователя из БД
func (r *repo) DeleteUser(ctx context.Context, id int) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	return r.exec(ctx, query)
}

func (r *repo) exec(ctx context.Context, query sq.Sqlizer) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
