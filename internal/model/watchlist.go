package model

type WatchlistItem struct {
	ID         int64     `json:"id"`
	MovieID    int64     `json:"movie_id"`
	MovieTitle string    `json:"movie_title"`
	PosterPath *string   `json:"poster_path,omitempty"`
	Rating     *int      `json:"rating,omitempty"`
	Watched    bool      `json:"watched"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  Timestamp `json:"created_at"`
}

type WatchlistRequest struct {
	MovieID    int64   `json:"movie_id"`
	MovieTitle string  `json:"movie_title"`
	PosterPath *string `json:"poster_path,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

type RatingUpdate struct {
	Rating int `json:"rating"`
}

type WatchedUpdate struct {
	Watched bool `json:"watched"`
}
