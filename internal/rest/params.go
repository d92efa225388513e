package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

const defaultPage = 1

func pathInt64(r *http.Request, name string) (int64, error) {
	var value int64
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	return value, err
}

func pathString(r *http.Request, name string) (string, error) {
	var value string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &value, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	return value, err
}

func queryString(r *http.Request, name string) (string, error) {
	var value string
	err := runtime.BindQueryParameter("form", true, true, name, r.URL.Query(), &value)
	return value, err
}

// queryPage reads the optional page parameter. Missing or non-positive pages
// mean the first page.
func queryPage(r *http.Request) (int, error) {
	var page *int
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &page); err != nil {
		return 0, err
	}
	if page == nil || *page < 1 {
		return defaultPage, nil
	}
	return *page, nil
}
