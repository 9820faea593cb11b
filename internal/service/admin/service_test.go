package admin

import (
	"context"
	"io"
	"testing"

	"charlies_odds_backend/internal/model"
	"charlies_odds_backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	repository.UserRepository
	balance int64
	deleted int
}

func (f *fakeUserRepo) UpdateBalance(_ context.Context, _ int, balance int64) error {
	f.balance = balance
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id int) error {
	f.deleted = id
	return nil
}

type fakeSettingsRepo struct {
	repository.GameSettingsRepository
	upserted *model.GameSettings
}

func (f *fakeSettingsRepo) UpsertSettings(_ context.Context, settings *model.GameSettings) error {
	f.upserted = settings
	return nil
}

type fakeSuggestionRepo struct {
	repository.SuggestionRepository
	status string
}

func (f *fakeSuggestionRepo) UpdateStatus(_ context.Context, _ string, status string) error {
	f.status = status
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newServ() (*serv, *fakeUserRepo, *fakeSettingsRepo, *fakeSuggestionRepo) {
	users := &fakeUserRepo{}
	settings := &fakeSettingsRepo{}
	suggestions := &fakeSuggestionRepo{}
	return NewService(users, settings, suggestions, testLogger()), users, settings, suggestions
}

func TestSetBalance(t *testing.T) {
	s, users, _, _ := newServ()

	require.NoError(t, s.SetBalance(context.Background(), 1, 50_000))
	assert.Equal(t, int64(50_000), users.balance)

	assert.ErrorIs(t, s.SetBalance(context.Background(), 1, -1), ErrNegativeBalance)
}

func TestDeleteUser(t *testing.T) {
	s, users, _, _ := newServ()

	require.NoError(t, s.DeleteUser(context.Background(), 7))
	assert.Equal(t, 7, users.deleted)
}

func TestUpdateGameSettings(t *testing.T) {
	s, _, settings, _ := newServ()

	valid := &model.GameSettings{
		Game: model.GameDice, Enabled: true, MinBet: 100, MaxBet: 10_000, HouseEdge: 2,
	}
	require.NoError(t, s.UpdateGameSettings(context.Background(), valid))
	assert.Equal(t, valid, settings.upserted)

	tests := []struct {
		name     string
		settings model.GameSettings
		err      error
	}{
		{
			name:     "неизвестная игра",
			settings: model.GameSettings{Game: "roulette", MinBet: 1, MaxBet: 10},
			err:      ErrUnknownGame,
		},
		{
			name:     "минимум меньше единицы",
			settings: model.GameSettings{Game: model.GameDice, MinBet: 0, MaxBet: 10},
			err:      ErrInvalidSettings,
		},
		{
			name:     "максимум меньше минимума",
			settings: model.GameSettings{Game: model.GameDice, MinBet: 100, MaxBet: 10},
			err:      ErrInvalidSettings,
		},
		{
			name:     "отрицательное преимущество",
			settings: model.GameSettings{Game: model.GameDice, MinBet: 1, MaxBet: 10, HouseEdge: -1},
			err:      ErrInvalidSettings,
		},
		{
			name:     "преимущество больше ста",
			settings: model.GameSettings{Game: model.GameDice, MinBet: 1, MaxBet: 10, HouseEdge: 101},
			err:      ErrInvalidSettings,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := tc.settings
			assert.ErrorIs(t, s.UpdateGameSettings(context.Background(), &st), tc.err)
		})
	}
}

func TestSetSuggestionStatus(t *testing.T) {
	s, _, _, suggestions := newServ()

	require.NoError(t, s.SetSuggestionStatus(context.Background(), "id", model.SuggestionPlanned))
	assert.Equal(t, model.SuggestionPlanned, suggestions.status)

	assert.ErrorIs(t, s.SetSuggestionStatus(context.Background(), "id", "archived"), ErrUnknownStatus)
}
