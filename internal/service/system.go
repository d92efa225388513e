package service

import (
	"context"

	"github.com/s21platform/moviemagic/internal/model"
	"github.com/s21platform/moviemagic/internal/query"
)

type System struct {
	api   SystemAPI
	cache *query.Client
}

func NewSystem(api SystemAPI, cache *query.Client) *System {
	return &System{
		api:   api,
		cache: cache,
	}
}

func (s *System) Health(ctx context.Context) (*model.Health, error) {
	return query.Fetch(ctx, s.cache, query.NewKey("system", "health"), s.api.Health)
}

func (s *System) Root(ctx context.Context) (*model.Health, error) {
	return query.Fetch(ctx, s.cache, query.NewKey("system", "root"), s.api.Root)
}
