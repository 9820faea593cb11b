package account

import (
	"context"
	"testing"
	"time"

	"charlies_odds_backend/internal/model"
	"charlies_odds_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	repository.UserRepository
	user     *model.User
	currency string
}

func (f *fakeUserRepo) GetUserForUpdate(_ context.Context, id int) (*model.User, error) {
	if f.user == nil || f.user.ID != id {
		return nil, repository.ErrNotFound
	}
	u := *f.user
	return &u, nil
}

func (f *fakeUserRepo) SetLastBonusDay(_ context.Context, _ int, day time.Time, balance int64) error {
	d := day
	f.user.LastBonusDay = &d
	f.user.Balance = balance
	return nil
}

func (f *fakeUserRepo) UpdateCurrency(_ context.Context, _ int, currency string) error {
	f.currency = currency
	return nil
}

func TestBonusForLevel(t *testing.T) {
	tests := []struct {
		level int
		bonus int64
	}{
		{1, 2_500},
		{4, 2_500},
		{5, 4_500},
		{9, 4_500},
		{12, 7_000},
		{15, 9_500},
		{25, 14_500},
		{49, 14_500},
		{50, 27_000},
		{60, 27_000},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.bonus, BonusForLevel(tc.level), "level=%d", tc.level)
	}
}

func TestClaimDailyBonus(t *testing.T) {
	users := &fakeUserRepo{user: &model.User{ID: 1, Balance: 100_000, Level: 5}}
	s := NewService(fakeTxManager{}, users)

	bonus, balance, err := s.ClaimDailyBonus(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(4_500), bonus)
	assert.Equal(t, int64(104_500), balance)
	require.NotNil(t, users.user.LastBonusDay)
}

func TestClaimDailyBonusTwiceSameDay(t *testing.T) {
	users := &fakeUserRepo{user: &model.User{ID: 1, Balance: 100_000, Level: 1}}
	s := NewService(fakeTxManager{}, users)

	_, _, err := s.ClaimDailyBonus(context.Background(), 1)
	require.NoError(t, err)

	_, _, err = s.ClaimDailyBonus(context.Background(), 1)
	assert.ErrorIs(t, err, ErrBonusAlreadyClaimed)
}

func TestClaimDailyBonusNextDay(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	users := &fakeUserRepo{user: &model.User{
		ID:           1,
		Balance:      100_000,
		Level:        1,
		LastBonusDay: &yesterday,
	}}
	s := NewService(fakeTxManager{}, users)

	bonus, balance, err := s.ClaimDailyBonus(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2_500), bonus)
	assert.Equal(t, int64(102_500), balance)
}

func TestSameDay(t *testing.T) {
	base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

	assert.True(t, sameDay(base, base.Add(13*time.Hour)))
	assert.False(t, sameDay(base, base.AddDate(0, 0, 1)))
	assert.False(t, sameDay(base, base.AddDate(1, 0, 0)))
}

func TestSetCurrency(t *testing.T) {
	users := &fakeUserRepo{user: &model.User{ID: 1}}
	s := NewService(fakeTxManager{}, users)

	require.NoError(t, s.SetCurrency(context.Background(), 1, "EUR"))
	assert.Equal(t, "EUR", users.currency)

	assert.ErrorIs(t, s.SetCurrency(context.Background(), 1, "XYZ"), ErrUnknownCurrency)
}
