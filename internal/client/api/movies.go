package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/s21platform/moviemagic/internal/model"
)

func (c *Client) MovieFeed(ctx context.Context, feed model.MovieFeed, page int) (*model.PaginatedMovies, error) {
	switch feed {
	case model.FeedPopular, model.FeedTopRated, model.FeedUpcoming:
	default:
		return nil, fmt.Errorf("unknown movie feed '%s'", feed)
	}

	return c.pagedMovies(ctx, "/movies/"+string(feed), queryParam{name: "page", value: page})
}

func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*model.PaginatedMovies, error) {
	return c.pagedMovies(ctx, "/movies/search",
		queryParam{name: "query", value: query},
		queryParam{name: "page", value: page},
	)
}

func (c *Client) SemanticSearch(ctx context.Context, req model.SemanticSearchRequest) (*model.SemanticSearchResponse, error) {
	var resp model.SemanticSearchResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/movies/semantic-search", body: req}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*model.MovieSummary, error) {
	path, err := moviePath(movieID, "")
	if err != nil {
		return nil, err
	}

	var movie model.MovieSummary
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *Client) SimilarMovies(ctx context.Context, movieID int64, page int) (*model.PaginatedMovies, error) {
	path, err := moviePath(movieID, "/similar")
	if err != nil {
		return nil, err
	}
	return c.pagedMovies(ctx, path, queryParam{name: "page", value: page})
}

func (c *Client) MovieRecommendations(ctx context.Context, movieID int64, page int) (*model.PaginatedMovies, error) {
	path, err := moviePath(movieID, "/recommendations")
	if err != nil {
		return nil, err
	}
	return c.pagedMovies(ctx, path, queryParam{name: "page", value: page})
}

func (c *Client) MovieCredits(ctx context.Context, movieID int64) (*model.MovieCredits, error) {
	path, err := moviePath(movieID, "/credits")
	if err != nil {
		return nil, err
	}

	var credits model.MovieCredits
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}

func (c *Client) pagedMovies(ctx context.Context, path string, params ...queryParam) (*model.PaginatedMovies, error) {
	query, err := queryParams(params...)
	if err != nil {
		return nil, err
	}

	var movies model.PaginatedMovies
	if err := c.do(ctx, request{method: http.MethodGet, path: path, query: query}, &movies); err != nil {
		return nil, err
	}
	return &movies, nil
}

func moviePath(movieID int64, suffix string) (string, error) {
	idParam, err := pathParam("movieId", movieID)
	if err != nil {
		return "", err
	}
	return "/movies/" + idParam + suffix, nil
}
