package suggestion

import "time"

type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type VoteRequest struct {
	Up bool `json:"up"`
}

type SuggestionResponse struct {
	ID          string    `json:"id"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Upvotes     int       `json:"upvotes"`
	Downvotes   int       `json:"downvotes"`
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}
