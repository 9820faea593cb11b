package game_settings_repo

import (
	"context"
	"errors"

	"charlies_odds_backend/internal/model"
	"charlies_odds_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "game_settings"
	colGame      = "game"
	colEnabled   = "enabled"
	colMinBet    = "min_bet"
	colMaxBet    = "max_bet"
	colHouseEdge = "house_edge"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameSettingsRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.GameSettingsRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// GetSettings - возвращает настройки игры по её идентификатору
func (r *repo) GetSettings(ctx context.Context, game string) (*model.GameSettings, error) {
	// Формируем запрос
	query := sq.Select(colGame, colEnabled, colMinBet, colMaxBet, colHouseEdge).
		From(table).
		Where(sq.Eq{colGame: game}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var s model.GameSettings
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&s.Game, &s.Enabled, &s.MinBet, &s.MaxBet, &s.HouseEdge)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &s, nil
}

// ListSettings - возвращает настройки всех игр
func (r *repo) ListSettings(ctx context.Context) ([]*model.GameSettings, error) {
	// Формируем запрос
	query := sq.Select(colGame, colEnabled, colMinBet, colMaxBet, colHouseEdge).
		From(table).
		OrderBy(colGame).
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

	var list []*model.GameSettings
	for rows.Next() {
		var s model.GameSettings
		err = rows.Scan(&s.Game, &s.Enabled, &s.MinBet, &s.MaxBet, &s.HouseEdge)
		if err != nil {
			return nil, err
		}
		list = append(list, &s)
	}

	return list, rows.Err()
}

// UpsertSettings - создает либо обновляет настройки игры
func (r *repo) UpsertSettings(ctx context.Context, settings *model.GameSettings) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colGame, colEnabled, colMinBet, colMaxBet, colHouseEdge).
		Values(settings.Game, settings.Enabled, settings.MinBet, settings.MaxBet, settings.HouseEdge).
		Suffix("ON CONFLICT (" + colGame + ") DO UPDATE SET " +
			colEnabled + " = EXCLUDED." + colEnabled + ", " +
			colMinBet + " = EXCLUDED." + colMinBet + ", " +
			colMaxBet + " = EXCLUDED." + colMaxBet + ", " +
			colHouseEdge + " = EXCLUDED." + colHouseEdge).
		PlaceholderFormat(sq.Dollar)

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
