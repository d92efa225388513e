package model

type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

type PersonSummary struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	KnownForDepartment string  `json:"known_for_department,omitempty"`
	ProfilePath        *string `json:"profile_path,omitempty"`
	Popularity         float64 `json:"popularity,omitempty"`
}

type PaginatedPeople struct {
	Page         int             `json:"page"`
	Results      []PersonSummary `json:"results"`
	TotalPages   int             `json:"total_pages"`
	TotalResults int             `json:"total_results"`
}

type PersonCreditMedia struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title,omitempty"`
	Name        string    `json:"name,omitempty"`
	MediaType   MediaType `json:"media_type"`
	Character   string    `json:"character,omitempty"`
	Job         string    `json:"job,omitempty"`
	ReleaseDate string    `json:"release_date,omitempty"`
	PosterPath  *string   `json:"poster_path,omitempty"`
}

type PersonCredits struct {
	ID   int64               `json:"id"`
	Cast []PersonCreditMedia `json:"cast"`
	Crew []PersonCreditMedia `json:"crew"`
}
