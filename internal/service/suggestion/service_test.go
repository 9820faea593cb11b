package suggestion

import (
	"context"
	"testing"

	"charlies_odds_backend/internal/model"
	"charlies_odds_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSuggestionRepo struct {
	repository.SuggestionRepository
	items map[string]*model.Suggestion
	votes map[string]map[int]bool
}

func newFakeRepo() *fakeSuggestionRepo {
	return &fakeSuggestionRepo{
		items: map[string]*model.Suggestion{},
		votes: map[string]map[int]bool{},
	}
}

func (f *fakeSuggestionRepo) CreateSuggestion(_ context.Context, s *model.Suggestion) error {
	f.items[s.ID] = s
	return nil
}

func (f *fakeSuggestionRepo) ListSuggestions(_ context.Context) ([]*model.Suggestion, error) {
	out := make([]*model.Suggestion, 0, len(f.items))
	for _, s := range f.items {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSuggestionRepo) GetSuggestion(_ context.Context, id string) (*model.Suggestion, error) {
	s, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s, nil
}

func (f *fakeSuggestionRepo) Vote(_ context.Context, suggestionID string, userID int, up bool) error {
	s := f.items[suggestionID]
	byUser := f.votes[suggestionID]
	if byUser == nil {
		byUser = map[int]bool{}
		f.votes[suggestionID] = byUser
	}

	prev, hadVote := byUser[userID]
	if hadVote && prev == up {
		return repository.ErrAlreadyVoted
	}
	byUser[userID] = up

	if up {
		s.Upvotes++
		if hadVote {
			s.Downvotes--
		}
	} else {
		s.Downvotes++
		if hadVote {
			s.Upvotes--
		}
	}
	return nil
}

func TestCreateSuggestion(t *testing.T) {
	s := NewService(newFakeRepo())

	created, err := s.Create(context.Background(), 1, "alice", "  Add roulette  ", " spin to win ", "game")
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Add roulette", created.Title)
	assert.Equal(t, "spin to win", created.Description)
	assert.Equal(t, model.SuggestionOpen, created.Status)
	assert.Equal(t, "alice", created.Author)
}

func TestCreateSuggestionValidation(t *testing.T) {
	s := NewService(newFakeRepo())

	_, err := s.Create(context.Background(), 1, "alice", "   ", "", "game")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = s.Create(context.Background(), 1, "alice", "Add roulette", "", "complaint")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestListSortedByScore(t *testing.T) {
	repo := newFakeRepo()
	repo.items["a"] = &model.Suggestion{ID: "a", Upvotes: 1, Downvotes: 3}
	repo.items["b"] = &model.Suggestion{ID: "b", Upvotes: 5}
	repo.items["c"] = &model.Suggestion{ID: "c", Upvotes: 2, Downvotes: 1}
	s := NewService(repo)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "b", list[0].ID)
	assert.Equal(t, "c", list[1].ID)
	assert.Equal(t, "a", list[2].ID)
}

func TestVote(t *testing.T) {
	repo := newFakeRepo()
	s := NewService(repo)

	created, err := s.Create(context.Background(), 1, "alice", "Add roulette", "", "game")
	require.NoError(t, err)

	require.NoError(t, s.Vote(context.Background(), created.ID, 2, true))
	assert.Equal(t, 1, created.Upvotes)

	// Повторный голос в ту же сторону не проходит
	assert.ErrorIs(t, s.Vote(context.Background(), created.ID, 2, true), repository.ErrAlreadyVoted)

	// Смена стороны перекладывает голос
	require.NoError(t, s.Vote(context.Background(), created.ID, 2, false))
	assert.Equal(t, 0, created.Upvotes)
	assert.Equal(t, 1, created.Downvotes)

	assert.ErrorIs(t, s.Vote(context.Background(), "missing", 2, true), repository.ErrNotFound)
}
