package catalog

import (
	"net/http"

	"bigvalue-web/internal/service/catalog"

	"github.com/go-chi/chi/v5"
)

const (
	CategoryQueryParam = "category"
	SearchQueryParam   = "q"

	productsPage = "products.page.html"
)

type Service interface {
	View(state catalog.ViewState) catalog.ProductsView
}

type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, data any)
}

type Catalog struct {
	service Service
	view    Renderer
}

func New(service Service, view Renderer) *Catalog {
	return &Catalog{
		service: service,
		view:    view,
	}
}

func (c *Catalog) Register() func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", c.products)
		r.Get("/index.html", c.products)
	}
}

func (c *Catalog) products(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state := catalog.NewViewState(q.Get(CategoryQueryParam), q.Get(SearchQueryParam))

	c.view.Render(w, r, productsPage, c.service.View(state))
}
