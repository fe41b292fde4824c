package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"bigvalue-web/internal/domain/models"
	"bigvalue-web/internal/lib/logger/sl"
	"bigvalue-web/internal/service/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() models.Catalog {
	return models.Catalog{Categories: []models.Category{
		{
			ID: "real-estate", Name: "부동산 데이터", Icon: "🏠",
			Products: []models.Product{
				{ID: "apt-price", Name: "아파트 시세 정보", Description: "전국 아파트 실거래가", Tags: []string{"시세", "아파트"}, Features: []string{"전월세 시세 정보"}},
				{ID: "owner", Name: "Property Owner", Description: "building owners", Tags: []string{"Owner"}, Features: []string{"Commercial BUILDINGS"}},
			},
		},
		{
			ID: "commerce", Name: "상권 데이터", Icon: "🏪",
			Products: []models.Product{
				{ID: "sales", Name: "매출 데이터", Description: "카드 매출", Tags: []string{"매출"}, Features: []string{"업종별 매출"}},
			},
		},
	}}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFlatten(t *testing.T) {
	products := catalog.Flatten(testCatalog())

	require.Len(t, products, 3)
	assert.Equal(t, "real-estate", products[0].CategoryID)
	assert.Equal(t, "부동산 데이터", products[0].CategoryName)
	assert.Equal(t, "🏠", products[0].CategoryIcon)
	assert.Equal(t, "commerce", products[2].CategoryID)
}

func TestFilter(t *testing.T) {
	products := catalog.Flatten(testCatalog())

	cases := []struct {
		name  string
		state catalog.ViewState
		want  []string
	}{
		{name: "everything", state: catalog.NewViewState("", ""), want: []string{"apt-price", "owner", "sales"}},
		{name: "all", state: catalog.NewViewState("all", "  "), want: []string{"apt-price", "owner", "sales"}},
		{name: "category", state: catalog.NewViewState("commerce", ""), want: []string{"sales"}},
		{name: "name", state: catalog.NewViewState("", "아파트"), want: []string{"apt-price"}},
		{name: "description", state: catalog.NewViewState("", "카드"), want: []string{"sales"}},
		{name: "tag", state: catalog.NewViewState("", "owner"), want: []string{"owner"}},
		{name: "feature case insensitive", state: catalog.NewViewState("", " buildings "), want: []string{"owner"}},
		{name: "category and search", state: catalog.NewViewState("commerce", "아파트"), want: []string{}},
		{name: "unknown category", state: catalog.NewViewState("nope", ""), want: []string{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(catalog.Filter(products, tc.state)))
		})
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	products := catalog.Flatten(testCatalog())
	before := ids(products)

	_ = catalog.Filter(products, catalog.NewViewState("commerce", "매출"))

	assert.Equal(t, before, ids(products))
}

func TestView(t *testing.T) {
	svc := catalog.NewFromCatalog(sl.Discard(), testCatalog())

	view := svc.View(catalog.NewViewState("", ""))
	assert.True(t, view.AllActive)
	assert.False(t, view.Failed())
	assert.Len(t, view.Categories, 2)
	assert.Len(t, view.Products, 3)

	view = svc.View(catalog.NewViewState("real-estate", ""))
	assert.False(t, view.AllActive)
	assert.Len(t, view.Products, 2)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"categories":[{"id":"c","name":"C","products":[{"id":"p","name":"P","tags":["t"],"features":["f"]}]}]}`), 0o644))

	c, err := catalog.Load(good)
	require.NoError(t, err)
	require.Len(t, c.Categories, 1)
	assert.Equal(t, "p", c.Categories[0].Products[0].ID)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"categories":[]}`), 0o644))

	_, err = catalog.Load(empty)
	require.ErrorIs(t, err, catalog.ErrEmptyCatalog)

	_, err = catalog.Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestNew_BrokenCatalogFails(t *testing.T) {
	svc := catalog.New(sl.Discard(), filepath.Join(t.TempDir(), "missing.json"))

	view := svc.View(catalog.NewViewState("", ""))
	assert.True(t, view.Failed())
	assert.Empty(t, view.Products)
}

func TestNew_ShippedCatalog(t *testing.T) {
	svc := catalog.New(sl.Discard(), filepath.Join("..", "..", "..", "data-products", "data-products-data.json"))

	view := svc.View(catalog.NewViewState("", ""))
	require.False(t, view.Failed())
	assert.NotEmpty(t, view.Products)
}
