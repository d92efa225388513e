package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/query"
)

const minMovieSearchLength = 3

type Movies struct {
	api       MovieAPI
	cache     *query.Client
	validator Validator

	semantic *query.Mutation[model.SemanticSearchRequest, *model.SemanticSearchResponse]
}

func NewMovies(api MovieAPI, cache *query.Client, validator Validator) *Movies {
	s := &Movies{
		api:       api,
		cache:     cache,
		validator: validator,
	}
	s.semantic = query.NewMutation(s.semanticSearch, nil)
	return s
}

func (s *Movies) Feed(ctx context.Context, feed model.MovieFeed, page int) (*model.PaginatedMovies, error) {
	return query.Fetch(ctx, s.cache, query.NewKey("movies", "feed", feed, page), func(ctx context.Context) (*model.PaginatedMovies, error) {
		return s.api.MovieFeed(ctx, feed, page)
	})
}

// Search returns an empty page without calling the API for queries that are
// too short to be useful.
func (s *Movies) Search(ctx context.Context, text string) (*model.PaginatedMovies, error) {
	if len([]rune(text)) < minMovieSearchLength {
		return &model.PaginatedMovies{Page: 1, Results: []model.MovieSummary{}}, nil
	}

	return query.Fetch(ctx, s.cache, query.NewKey("movies", "search", text), func(ctx context.Context) (*model.PaginatedMovies, error) {
		return s.api.SearchMovies(ctx, text, 1)
	})
}

func (s *Movies) SemanticSearch(ctx context.Context, req model.SemanticSearchRequest) (*model.SemanticSearchResponse, error) {
	return s.semantic.Run(ctx, req)
}

func (s *Movies) SemanticSearchPending() bool {
	return s.semantic.IsPending()
}

func (s *Movies) Details(ctx context.Context, movieID int64) (*model.MovieSummary, error) {
	return query.Fetch(ctx, s.cache, query.NewKey("movies", "detail", movieID), func(ctx context.Context) (*model.MovieSummary, error) {
		return s.api.MovieDetails(ctx, movieID)
	})
}

func (s *Movies) Credits(ctx context.Context, movieID int64) (*model.MovieCredits, error) {
	return query.Fetch(ctx, s.cache, query.NewKey("movies", "credits", movieID), func(ctx context.Context) (*model.MovieCredits, error) {
		return s.api.MovieCredits(ctx, movieID)
	})
}

func (s *Movies) Similar(ctx context.Context, movieID int64) (*model.PaginatedMovies, error) {
	return query.Fetch(ctx, s.cache, query.NewKey("movies", "similar", movieID), func(ctx context.Context) (*model.PaginatedMovies, error) {
		return s.api.SimilarMovies(ctx, movieID, 1)
	})
}

func (s *Movies) Recommendations(ctx context.Context, movieID int64) (*model.PaginatedMovies, error) {
	return query.Fetch(ctx, s.cache, query.NewKey("movies", "recommendations", movieID), func(ctx context.Context) (*model.PaginatedMovies, error) {
		return s.api.MovieRecommendations(ctx, movieID, 1)
	})
}

// Overview loads everything the detail view needs in parallel.
func (s *Movies) Overview(ctx context.Context, movieID int64) (*model.MovieOverview, error) {
	var overview model.MovieOverview

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		details, err := s.Details(gctx, movieID)
		if err != nil {
			return fmt.Errorf("failed to get movie details: %w", err)
		}
		overview.Details = *details
		return nil
	})

	g.Go(func() error {
		credits, err := s.Credits(gctx, movieID)
		if err != nil {
			return fmt.Errorf("failed to get movie credits: %w", err)
		}
		overview.Credits = *credits
		return nil
	})

	g.Go(func() error {
		similar, err := s.Similar(gctx, movieID)
		if err != nil {
			return fmt.Errorf("failed to get similar movies: %w", err)
		}
		overview.Similar = *similar
		return nil
	})

	g.Go(func() error {
		recommendations, err := s.Recommendations(gctx, movieID)
		if err != nil {
			return fmt.Errorf("failed to get movie recommendations: %w", err)
		}
		overview.Recommendations = *recommendations
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &overview, nil
}

func (s *Movies) semanticSearch(ctx context.Context, req model.SemanticSearchRequest) (*model.SemanticSearchResponse, error) {
	req.Query = strings.TrimSpace(req.Query)
	if err := s.validator.ValidateSemanticSearch(&req); err != nil {
		return nil, fmt.Errorf("invalid semantic search: %w", err)
	}

	return s.api.SemanticSearch(ctx, req)
}
