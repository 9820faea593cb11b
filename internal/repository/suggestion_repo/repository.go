package suggestion_repo

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
	table          = "suggestions"
	colID          = "id"
	colUserID      = "user_id"
	colAuthor      = "author"
	colTitle       = "title"
	colDescription = "description"
	colCategory    = "category"
	colStatus      = "status"
	colUpvotes     = "upvotes"
	colDownvotes   = "downvotes"
	colCreatedAt   = "created_at"

	votesTable       = "suggestion_votes"
	colSuggestionID  = "suggestion_id"
	colVoteUserID    = "user_id"
	colVoteDirection = "up"
)

var columns = []string{
	colID, colUserID, colAuthor, colTitle, colDescription,
	colCategory, colStatus, colUpvotes, colDownvotes, colCreatedAt,
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSuggestionRepository(dbc *pgxpool.Pool, getter *trmpgx.CtxGetter) repository.SuggestionRepository {
	return &repo{
		dbc:    dbc,
		getter: getter,
	}
}

// CreateSuggestion - сохраняет новое предложение
func (r *repo) CreateSuggestion(ctx context.Context, s *model.Suggestion) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(columns...).
		Values(s.ID, s.UserID, s.Author, s.Title, s.Description, s.Category, s.Status, s.Upvotes, s.Downvotes, s.CreatedAt).
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

// ListSuggestions - возвращает все предложения, новые первыми
func (r *repo) ListSuggestions(ctx context.Context) ([]*model.Suggestion, error) {
	// Формируем запрос
	query := sq.Select(columns...).
		From(table).
		OrderBy(colCreatedAt + " DESC").
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

	var list []*model.Suggestion
	for rows.Next() {
		s, err := scanSuggestion(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}

	return list, rows.Err()
}

// GetSuggestion - возвращает предложение по ID
func (r *repo) GetSuggestion(ctx context.Context, id string) (*model.Suggestion, error) {
	// Формируем запрос
	query := sq.Select(columns...).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	row := r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...)
	return scanSuggestion(row)
}

func scanSuggestion(row pgx.Row) (*model.Suggestion, error) {
	var s model.Suggestion
	err := row.Scan(
		&s.ID, &s.UserID, &s.Author, &s.Title, &s.Description,
		&s.Category, &s.Status, &s.Upvotes, &s.Downvotes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &s, nil
}

// Vote - записывает голос пользователя. Смена направления
// перезаписывает предыдущий голос и корректирует оба счётчика
func (r *repo) Vote(ctx context.Context, suggestionID string, userID int, up bool) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	// Прошлый голос этого пользователя, если был
	query := sq.Select(colVoteDirection).
		From(votesTable).
		Where(sq.Eq{colSuggestionID: suggestionID, colVoteUserID: userID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	var prev bool
	hadVote := true
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(&prev)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		hadVote = false
	}

	if hadVote && prev == up {
		return repository.ErrAlreadyVoted
	}

	upsert := sq.Insert(votesTable).
		Columns(colSuggestionID, colVoteUserID, colVoteDirection).
		Values(suggestionID, userID, up).
		Suffix("ON CONFLICT (" + colSuggestionID + ", " + colVoteUserID + ") DO UPDATE SET " +
			colVoteDirection + " = EXCLUDED." + colVoteDirection).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = upsert.ToSql()
	if err != nil {
		return err
	}

	if _, err = conn.Exec(ctx, sqlStr, args...); err != nil {
		return err
	}

	update := sq.Update(table).Where(sq.Eq{colID: suggestionID}).PlaceholderFormat(sq.Dollar)
	if up {
		update = update.Set(colUpvotes, sq.Expr(colUpvotes+" + 1"))
		if hadVote {
			update = update.Set(colDownvotes, sq.Expr(colDownvotes+" - 1"))
		}
	} else {
		update = update.Set(colDownvotes, sq.Expr(colDownvotes+" + 1"))
		if hadVote {
			update = update.Set(colUpvotes, sq.Expr(colUpvotes+" - 1"))
		}
	}

	sqlStr, args, err = update.ToSql()
	if err != nil {
		return err
	}

	_, err = conn.Exec(ctx, sqlStr, args...)
	return err
}

// UpdateStatus - переводит предложение в новый статус
func (r *repo) UpdateStatus(ctx context.Context, id string, status string) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colStatus, status).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}
