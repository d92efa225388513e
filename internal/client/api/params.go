package api

import (
	"fmt"
	"net/url"

	"github.com/oapi-codegen/runtime"
)

type queryParam struct {
	name  string
	value interface{}
}

func pathParam(name string, value interface{}) (string, error) {
	styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return "", fmt.Errorf("failed to style path param %s: %w", name, err)
	}
	return styled, nil
}

func queryParams(params ...queryParam) (url.Values, error) {
	values := url.Values{}
	for _, p := range params {
		fragment, err := runtime.StyleParamWithLocation("form", true, p.name, runtime.ParamLocationQuery, p.value)
		if err != nil {
			return nil, fmt.Errorf("failed to style query param %s: %w", p.name, err)
		}

		parsed, err := url.ParseQuery(fragment)
		if err != nil {
			return nil, fmt.Errorf("failed to parse query param %s: %w", p.name, err)
		}

		for key, items := range parsed {
			for _, item := range items {
				values.Add(key, item)
			}
		}
	}
	return values, nil
}
