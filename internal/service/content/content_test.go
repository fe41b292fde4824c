package content_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"bigvalue-web/internal/lib/logger/sl"
	"bigvalue-web/internal/service/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	srv    *httptest.Server
	hits   atomic.Int32
	path   atomic.Value
	status int
	body   string
}

func newBackend(t *testing.T, status int, body string) *backend {
	t.Helper()

	b := &backend{status: status, body: body}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.hits.Add(1)
		b.path.Store(r.URL.RequestURI())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(b.status)
		_, _ = w.Write([]byte(b.body))
	}))
	t.Cleanup(b.srv.Close)

	return b
}

func (b *backend) service() *content.Service {
	return content.New(sl.Discard(), b.srv.Client(), b.srv.URL, time.UTC, 10)
}

func section(t *testing.T, slug string) content.Section {
	t.Helper()

	for _, sec := range content.DefaultSections() {
		if sec.Slug == slug {
			return sec
		}
	}
	t.Fatalf("section %q not found", slug)
	return content.Section{}
}

func TestDetail_Rendered(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"data":{"id":5,"title":"T","createAt":"2024-01-02T03:04:00Z","creator":{"nickname":"kim"},"summary":"S","content":"<p>hi</p>","thumbnail":{"id":12}}}`)
	sec := section(t, "newsroom")

	view := b.service().Detail(context.Background(), sec, "5")

	require.False(t, view.Failed())
	assert.Equal(t, "/news-room/5", b.path.Load())
	assert.Equal(t, "T", view.Title)
	assert.Equal(t, "T", view.Breadcrumb)
	assert.Equal(t, "2024-01-02 03:04", view.Date)
	assert.Equal(t, "2024-01-02T03:04:00Z", view.DateTime)
	assert.Equal(t, "kim", view.Author)
	assert.Equal(t, "S", view.Summary)
	assert.Equal(t, "<p>hi</p>", string(view.Body))
	assert.Equal(t, b.srv.URL+"/news-room/thumbnail/12", view.ThumbnailURL)
	assert.Equal(t, "T - Newsroom - BigValue", view.DocumentTitle)
}

func TestDetail_MissingIDIssuesNoRequest(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"title":"T"}`)

	for _, id := range []string{"", "   "} {
		view := b.service().Detail(context.Background(), section(t, "notice"), id)
		assert.True(t, view.Failed())
		assert.Equal(t, "Notice - BigValue", view.DocumentTitle)
	}
	assert.Zero(t, b.hits.Load())

	_, err := b.service().FetchDetail(context.Background(), section(t, "notice"), "")
	require.ErrorIs(t, err, content.ErrLoadFailed)
	require.ErrorIs(t, err, content.ErrMissingID)
}

func TestDetail_Failures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "not found", status: http.StatusNotFound, body: `{"title":"T"}`},
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "invalid json", status: http.StatusOK, body: `<html>`},
		{name: "no title", status: http.StatusOK, body: `{"data":{"summary":"S"}}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			b := newBackend(t, tc.status, tc.body)

			_, err := b.service().FetchDetail(context.Background(), section(t, "newsroom"), "1")
			require.ErrorIs(t, err, content.ErrLoadFailed)

			view := b.service().Detail(context.Background(), section(t, "newsroom"), "1")
			assert.True(t, view.Failed())
			assert.Empty(t, view.Title)
			assert.Equal(t, int32(2), b.hits.Load())
		})
	}
}

func TestDetail_BreadcrumbOnlyTruncated(t *testing.T) {
	title := strings.Repeat("가", 31)
	b := newBackend(t, http.StatusOK, `{"title":"`+title+`"}`)

	view := b.service().Detail(context.Background(), section(t, "newsroom"), "1")

	require.False(t, view.Failed())
	assert.Equal(t, strings.Repeat("가", 30)+"...", view.Breadcrumb)
	assert.Equal(t, title, view.Title)
	assert.Equal(t, title+" - Newsroom - BigValue", view.DocumentTitle)
}

func TestDetail_NoThumbnailNoBody(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"title":"T"}`)

	view := b.service().Detail(context.Background(), section(t, "newsroom"), "1")
	require.False(t, view.Failed())
	assert.Empty(t, view.ThumbnailURL)
	assert.Empty(t, view.Body)
	assert.Empty(t, view.Date)

	view = b.service().Detail(context.Background(), section(t, "customer-studies"), "1")
	require.False(t, view.Failed())
	assert.Equal(t, "BigValue", view.Author)
	assert.Equal(t, "<p>내용이 없습니다.</p>", string(view.Body))
}

func TestList_Cards(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"data":{"page":{"content":[
		{"id":1,"title":"A","createAt":"2024-01-02T03:04:00Z","thumbnail":{"id":"x1"}},
		{"id":2,"title":"B"}
	]}}}`)

	view := b.service().List(context.Background(), section(t, "newsroom"), 2, 2)

	require.False(t, view.Failed())
	assert.Equal(t, "/news-room?page=2&size=2", b.path.Load())
	require.Len(t, view.Cards, 2)

	assert.Equal(t, "2024-01-02", view.Cards[0].Date)
	assert.Equal(t, "/newsroom/detail.html?id=1", view.Cards[0].DetailURL)
	assert.True(t, view.Cards[0].ShowImage)
	assert.False(t, view.Cards[0].Placeholder)
	assert.Equal(t, b.srv.URL+"/news-room/thumbnail/x1", view.Cards[0].ImageURL)

	assert.True(t, view.Cards[1].ShowImage)
	assert.True(t, view.Cards[1].Placeholder)
	assert.Empty(t, view.Cards[1].ImageURL)

	assert.Equal(t, 1, view.PrevPage)
	assert.Equal(t, 3, view.NextPage)
}

func TestList_TextOnly(t *testing.T) {
	b := newBackend(t, http.StatusOK, `[{"id":1,"title":"A","thumbnail":{"id":"x1"}}]`)

	view := b.service().List(context.Background(), section(t, "notice"), 1, 10)

	require.False(t, view.Failed())
	assert.True(t, view.TextOnly)
	require.Len(t, view.Cards, 1)
	assert.False(t, view.Cards[0].ShowImage)
	assert.Empty(t, view.Cards[0].ImageURL)
	assert.Zero(t, view.PrevPage)
	assert.Zero(t, view.NextPage)
}

func TestList_Failures(t *testing.T) {
	b := newBackend(t, http.StatusBadGateway, `[]`)

	view := b.service().List(context.Background(), section(t, "notice"), 1, 10)
	assert.True(t, view.Failed())
	assert.Empty(t, view.Cards)

	b = newBackend(t, http.StatusOK, `not json`)
	view = b.service().List(context.Background(), section(t, "notice"), 1, 10)
	assert.True(t, view.Failed())
}

func TestList_UnknownShapeIsEmpty(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"items":[{"title":"A"}]}`)

	view := b.service().List(context.Background(), section(t, "notice"), 1, 10)
	assert.False(t, view.Failed())
	assert.Empty(t, view.Cards)
}

func TestThumbnailURL_URLFieldWins(t *testing.T) {
	b := newBackend(t, http.StatusOK, `{"title":"T","thumbnail":{"id":3,"url":"https://cdn.example.com/t.png"}}`)

	view := b.service().Detail(context.Background(), section(t, "customer-studies"), "1")

	require.False(t, view.Failed())
	assert.Equal(t, "/ai-use-case/1", b.path.Load())
	assert.Equal(t, "https://cdn.example.com/t.png", view.ThumbnailURL)
}

func TestBreadcrumb(t *testing.T) {
	assert.Equal(t, "short", content.Breadcrumb("short", 30))
	assert.Equal(t, strings.Repeat("a", 30), content.Breadcrumb(strings.Repeat("a", 30), 30))
	assert.Equal(t, "abc...", content.Breadcrumb("abcd", 3))
}
