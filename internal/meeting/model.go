package meeting

import "time"

// Record is one completed meeting analysis as stored by the repository.
type Record struct {
	ID          string
	Filename    string
	CreatedAt   time.Time
	Transcript  string
	Summary     string
	ActionItems []string
}

// SearchHit is the projection of a Record returned by search.
type SearchHit struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
	Summary   string    `json:"summary"`
}
