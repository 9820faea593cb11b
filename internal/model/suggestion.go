package model

import "time"

// Статусы предложений
const (
	SuggestionOpen        = "open"
	SuggestionUnderReview = "under-review"
	SuggestionPlanned     = "planned"
	SuggestionInProgress  = "in-progress"
	SuggestionCompleted   = "completed"
	SuggestionRejected    = "rejected"
)

// SuggestionStatuses - допустимые статусы для перевода админом
var SuggestionStatuses = map[string]bool{
	SuggestionOpen:        true,
	SuggestionUnderReview: true,
	SuggestionPlanned:     true,
	SuggestionInProgress:  true,
	SuggestionCompleted:   true,
	SuggestionRejected:    true,
}

// Категории предложений
var SuggestionCategories = map[string]bool{
	"feature":     true,
	"improvement": true,
	"bug":         true,
	"game":        true,
}

type Suggestion struct {
	ID          string
	UserID      int
	Author      string
	Title       string
	Description string
	Category    string
	Status      string
	Upvotes     int
	Downvotes   int
	CreatedAt   time.Time
}

// Score - рейтинг предложения для сортировки
func (s *Suggestion) Score() int {
	return s.Upvotes - s.Downvotes
}
