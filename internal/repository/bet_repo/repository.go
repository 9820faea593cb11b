package bet_repo

import (
	"context"
	"encoding/json"
	"fmt"

	"charlies_odds_backend/internal/model"
	"charlies_odds_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table         = "bets"
	colID         = "id"
	colUserID     = "user_id"
	colGame       = "game"
	colStake      = "stake"
	colPayout     = "payout"
	colMultiplier = "multiplier"
	colResult     = "result"
	colCreatedAt  = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewBetRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.BetRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateBet - сохраняет запись о рассчитанной ставке
func (r *repo) CreateBet(ctx context.Context, bet *model.BetRecord) error {
	result, err := json.Marshal(bet.Result)
	if err != nil {
		return err
	}

	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUserID, colGame, colStake, colPayout, colMultiplier, colResult, colCreatedAt).
		Values(bet.ID, bet.UserID, bet.Game, bet.Stake, bet.Payout, bet.Multiplier, result, bet.CreatedAt).
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

// TrimHistory - удаляет записи пользователя сверх keep последних
func (r *repo) TrimHistory(ctx context.Context, userID int, keep int) error {
	// Подзапрос: created_at последней записи, которую оставляем
	sqlStr := fmt.Sprintf(
		`DELETE FROM %s WHERE %s = $1 AND %s NOT IN (
			SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT $2
		)`,
		table, colUserID, colID, colID, table, colUserID, colCreatedAt,
	)

	_, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, userID, keep)
	if err != nil {
		return err
	}

	return nil
}

// ListBets - возвращает ставки пользователя, новые первыми
func (r *repo) ListBets(ctx context.Context, userID int, limit, offset int) ([]*model.BetRecord, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colGame, colStake, colPayout, colMultiplier, colResult, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
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

	var bets []*model.BetRecord
	for rows.Next() {
		var bet model.BetRecord
		var result []byte
		err = rows.Scan(&bet.ID, &bet.UserID, &bet.Game, &bet.Stake, &bet.Payout, &bet.Multiplier, &result, &bet.CreatedAt)
		if err != nil {
			return nil, err
		}
		if len(result) > 0 {
			if err = json.Unmarshal(result, &bet.Result); err != nil {
				return nil, err
			}
		}
		bets = append(bets, &bet)
	}

	return bets, rows.Err()
}

// ClearBets - удаляет всю историю ставок пользователя
func (r *repo) ClearBets(ctx context.Context, userID int) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colUserID: userID}).
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
