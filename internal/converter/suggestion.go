package converter

import (
	"charlies_odds_backend/internal/api/dto/suggestion"
	"charlies_odds_backend/internal/model"
)

func ToSuggestionResponse(s *model.Suggestion) suggestion.SuggestionResponse {
	return suggestion.SuggestionResponse{
		ID:          s.ID,
		Author:      s.Author,
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Status:      s.Status,
		Upvotes:     s.Upvotes,
		Downvotes:   s.Downvotes,
		Score:       s.Score(),
		CreatedAt:   s.CreatedAt,
	}
}

func ToSuggestionListResponse(list []*model.Suggestion) suggestion.ListResponse {
	out := make([]suggestion.SuggestionResponse, len(list))
	for i, s := range list {
		out[i] = ToSuggestionResponse(s)
	}
	return suggestion.ListResponse{Suggestions: out}
}
