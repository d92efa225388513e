package service

import (
	"context"
	"strings"

	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/query"
)

const minPersonSearchLength = 2

type People struct {
	api   PeopleAPI
	cache *query.Client
}

func NewPeople(api PeopleAPI, cache *query.Client) *People {
	return &People{
		api:   api,
		cache: cache,
	}
}

func (s *People) Search(ctx context.Context, text string) (*model.PaginatedPeople, error) {
	if len([]rune(strings.TrimSpace(text))) < minPersonSearchLength {
		return &model.PaginatedPeople{Page: 1, Results: []model.PersonSummary{}}, nil
	}

	return query.Fetch(ctx, s.cache, query.NewKey("people", "search", text), func(ctx context.Context) (*model.PaginatedPeople, error) {
		return s.api.SearchPeople(ctx, text, 1)
	})
}

func (s *People) Credits(ctx context.Context, personID int64) (*model.PersonCredits, error) {
	return query.Fetch(ctx, s.cache, query.NewKey("people", "credits", personID), func(ctx context.Context) (*model.PersonCredits, error) {
		return s.api.PersonCredits(ctx, personID)
	})
}
