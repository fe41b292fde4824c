package content

import (
	"context"
	"net/http"
	"strconv"

	"bigvalue-web/internal/service/content"

	"github.com/go-chi/chi/v5"
)

const (
	IDQueryParam       = "id"
	PageQueryParam     = "page"
	PageSizeQueryParam = "size"

	maxPageSize = 100
)

//go:generate go run github.com/vektra/mockery/v2@v2.28.2 --name=Service
type Service interface {
	List(ctx context.Context, sec content.Section, page, size int) content.ListView
	Detail(ctx context.Context, sec content.Section, id string) content.DetailView
	PageSize() int
}

type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, data any)
}

// Content serves the list and detail pages of one section.
type Content struct {
	service Service
	view    Renderer
	section content.Section
}

func New(service Service, view Renderer, section content.Section) *Content {
	return &Content{
		service: service,
		view:    view,
		section: section,
	}
}

func (c *Content) Register() func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", c.list)
		r.Get("/index.html", c.list)
		r.Get("/detail.html", c.detail)
	}
}

func (c *Content) list(w http.ResponseWriter, r *http.Request) {
	page := positiveQuery(r, PageQueryParam, content.DefaultPage, 0)
	size := positiveQuery(r, PageSizeQueryParam, c.service.PageSize(), maxPageSize)

	view := c.service.List(r.Context(), c.section, page, size)

	c.view.Render(w, r, c.section.Targets.ListTemplate, view)
}

func (c *Content) detail(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get(IDQueryParam)

	view := c.service.Detail(r.Context(), c.section, id)

	c.view.Render(w, r, c.section.Targets.DetailTemplate, view)
}

// positiveQuery reads a positive integer query value. Anything else falls
// back to defaultVal; max caps the value when it is positive.
func positiveQuery(r *http.Request, name string, defaultVal, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		return defaultVal
	}
	if max > 0 && val > max {
		return max
	}

	return val
}
