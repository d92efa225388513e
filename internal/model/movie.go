package model

type MovieFeed string

const (
	FeedPopular  MovieFeed = "popular"
	FeedTopRated MovieFeed = "top-rated"
	FeedUpcoming MovieFeed = "upcoming"
)

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MovieSummary struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Overview     string   `json:"overview,omitempty"`
	ReleaseDate  string   `json:"release_date,omitempty"`
	VoteAverage  *float64 `json:"vote_average,omitempty"`
	PosterPath   *string  `json:"poster_path,omitempty"`
	BackdropPath *string  `json:"backdrop_path,omitempty"`
	Runtime      int      `json:"runtime,omitempty"`
	Genres       []Genre  `json:"genres,omitempty"`
	GenreIDs     []int    `json:"genre_ids,omitempty"`
	Similarity   *float64 `json:"similarity,omitempty"`
}

type PaginatedMovies struct {
	Page         int            `json:"page"`
	Results      []MovieSummary `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type SemanticSearchRequest struct {
	Query string `json:"query"`
	Limit *int   `json:"limit,omitempty"`
}

type SemanticSearchResponse struct {
	Query   string         `json:"query"`
	Results []MovieSummary `json:"results"`
	Count   int            `json:"count"`
}

type CastCredit struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character,omitempty"`
	ProfilePath *string `json:"profile_path,omitempty"`
	Order       int     `json:"order,omitempty"`
}

type CrewCredit struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Job         string  `json:"job,omitempty"`
	Department  string  `json:"department,omitempty"`
	ProfilePath *string `json:"profile_path,omitempty"`
}

type MovieCredits struct {
	ID   int64        `json:"id"`
	Cast []CastCredit `json:"cast"`
	Crew []CrewCredit `json:"crew"`
}

type RelatedMovie struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	PosterPath *string `json:"poster_path,omitempty"`
}

// MovieRecommendation is the structured payload attached to assistant replies.
type MovieRecommendation struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Reason      string         `json:"reason,omitempty"`
	PosterPath  *string        `json:"poster_path,omitempty"`
	VoteAverage *float64       `json:"vote_average,omitempty"`
	ReleaseDate string         `json:"release_date,omitempty"`
	Overview    string         `json:"overview,omitempty"`
	TrailerKey  *string        `json:"trailer_key,omitempty"`
	Thrillers   []RelatedMovie `json:"thrillers,omitempty"`
}

// MovieOverview bundles everything the movie detail view shows.
type MovieOverview struct {
	Details         MovieSummary
	Credits         MovieCredits
	Similar         PaginatedMovies
	Recommendations PaginatedMovies
}
