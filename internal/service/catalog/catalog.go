package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"bigvalue-web/internal/domain/models"
	"bigvalue-web/internal/lib/logger/sl"
)

// CategoryAll selects every category.
const CategoryAll = "all"

var ErrEmptyCatalog = errors.New("catalog has no categories")

// ViewState is what the viewer picked on the data products page.
type ViewState struct {
	Category string
	Search   string
}

func NewViewState(category, search string) ViewState {
	category = strings.TrimSpace(category)
	if category == "" {
		category = CategoryAll
	}

	return ViewState{
		Category: category,
		Search:   strings.TrimSpace(search),
	}
}

type ProductsView struct {
	State      ViewState
	Categories []models.Category
	Products   []models.Product
	AllActive  bool
	Error      bool
}

func (v ProductsView) Failed() bool { return v.Error }

// Filter returns the products matching state. products is not modified.
func Filter(products []models.Product, state ViewState) []models.Product {
	term := strings.ToLower(strings.TrimSpace(state.Search))
	category := state.Category

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if category != "" && category != CategoryAll && p.CategoryID != category {
			continue
		}
		if term != "" && !matches(p, term) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

func matches(p models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	for _, f := range p.Features {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Flatten lists every product together with its category.
func Flatten(c models.Catalog) []models.Product {
	var products []models.Product
	for _, cat := range c.Categories {
		for _, p := range cat.Products {
			p.CategoryID = cat.ID
			p.CategoryName = cat.Name
			p.CategoryIcon = cat.Icon
			products = append(products, p)
		}
	}
	return products
}

// Load reads the catalog file.
func Load(path string) (models.Catalog, error) {
	const op = "service.catalog.Load"

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Catalog{}, fmt.Errorf("%s: %w", op, err)
	}

	var c models.Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return models.Catalog{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(c.Categories) == 0 {
		return models.Catalog{}, fmt.Errorf("%s: %w", op, ErrEmptyCatalog)
	}

	return c, nil
}

type Service struct {
	log        *slog.Logger
	categories []models.Category
	products   []models.Product
	failed     bool
}

// New loads the catalog once. A catalog that cannot be loaded is logged and
// every page shows the error panel.
func New(log *slog.Logger, path string) *Service {
	const op = "service.catalog.New"

	c, err := Load(path)
	if err != nil {
		log.Error("failed to load catalog", slog.String("op", op), slog.String("path", path), sl.Error(err))
		return &Service{log: log, failed: true}
	}

	return NewFromCatalog(log, c)
}

func NewFromCatalog(log *slog.Logger, c models.Catalog) *Service {
	return &Service{
		log:        log,
		categories: c.Categories,
		products:   Flatten(c),
	}
}

func (s *Service) View(state ViewState) ProductsView {
	view := ProductsView{
		State:      state,
		Categories: s.categories,
		AllActive:  state.Category == "" || state.Category == CategoryAll,
		Error:      s.failed,
	}
	if s.failed {
		return view
	}

	view.Products = Filter(s.products, state)

	s.log.Debug("products filtered",
		slog.String("category", state.Category),
		slog.String("search", state.Search),
		slog.Int("count", len(view.Products)),
	)

	return view
}
