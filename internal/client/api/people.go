package api

import (
	"context"
	"net/http"

	"github.com/s21platform/moviemagic/internal/model"
)

func (c *Client) SearchPeople(ctx context.Context, query string, page int) (*model.PaginatedPeople, error) {
	values, err := queryParams(
		queryParam{name: "query", value: query},
		queryParam{name: "page", value: page},
	)
	if err != nil {
		return nil, err
	}

	var people model.PaginatedPeople
	if err := c.do(ctx, request{method: http.MethodGet, path: "/person/search", query: values}, &people); err != nil {
		return nil, err
	}
	return &people, nil
}

func (c *Client) PersonCredits(ctx context.Context, personID int64) (*model.PersonCredits, error) {
	idParam, err := pathParam("personId", personID)
	if err != nil {
		return nil, err
	}

	var credits model.PersonCredits
	if err := c.do(ctx, request{method: http.MethodGet, path: "/person/" + idParam + "/credits"}, &credits); err != nil {
		return nil, err
	}
	return &credits, nil
}
