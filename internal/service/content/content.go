package content

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bigvalue-web/internal/domain/models"
	"bigvalue-web/internal/lib/datefmt"
	"bigvalue-web/internal/lib/envelope"
	"bigvalue-web/internal/lib/logger/sl"
)

var (
	// ErrLoadFailed is the only failure the pages distinguish.
	ErrLoadFailed = errors.New("load failed")
	ErrMissingID  = errors.New("record id is missing")

	ErrUnexpectedStatus = errors.New("unexpected response status")
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	maxBodySize = 2 << 20
)

type Service struct {
	log      *slog.Logger
	client   *http.Client
	baseURL  string
	loc      *time.Location
	pageSize int
}

func New(log *slog.Logger, client *http.Client, baseURL string, loc *time.Location, pageSize int) *Service {
	if loc == nil {
		loc = time.Local
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Service{
		log:      log,
		client:   client,
		baseURL:  strings.TrimRight(baseURL, "/"),
		loc:      loc,
		pageSize: pageSize,
	}
}

func (s *Service) PageSize() int {
	return s.pageSize
}

// Endpoint is the backend URL of a section.
func (s *Service) Endpoint(sec Section) string {
	return s.baseURL + "/" + sec.Resource
}

// ThumbnailURL composes the image URL of a record, "" when it has none.
func (s *Service) ThumbnailURL(sec Section, rec models.Record) string {
	if rec.ThumbnailURL != "" {
		return rec.ThumbnailURL
	}
	if rec.ThumbnailID == "" {
		return ""
	}
	return s.Endpoint(sec) + "/thumbnail/" + url.PathEscape(rec.ThumbnailID)
}

// FetchList loads one page of a section's records.
func (s *Service) FetchList(ctx context.Context, sec Section, page, size int) ([]models.Record, error) {
	const op = "service.content.FetchList"

	u, err := url.Parse(s.Endpoint(sec))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrLoadFailed, err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	doc, err := s.get(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := envelope.Items(doc)
	records := make([]models.Record, 0, len(items))
	for _, item := range items {
		records = append(records, sec.Fields.Apply(item))
	}

	return records, nil
}

// FetchDetail loads one record. A missing id fails without a request.
func (s *Service) FetchDetail(ctx context.Context, sec Section, id string) (models.Record, error) {
	const op = "service.content.FetchDetail"

	id = strings.TrimSpace(id)
	if id == "" {
		return models.Record{}, fmt.Errorf("%s: %w: %w", op, ErrLoadFailed, ErrMissingID)
	}

	doc, err := s.get(ctx, s.Endpoint(sec)+"/"+url.PathEscape(id))
	if err != nil {
		return models.Record{}, fmt.Errorf("%s: %w", op, err)
	}

	rec, err := envelope.Record(doc)
	if err != nil {
		return models.Record{}, fmt.Errorf("%s: %w: %w", op, ErrLoadFailed, err)
	}

	return sec.Fields.Apply(rec), nil
}

// List renders a list page. Failures end in the error view.
func (s *Service) List(ctx context.Context, sec Section, page, size int) ListView {
	const op = "service.content.List"

	log := s.log.With(slog.String("op", op), slog.String("section", sec.Slug))

	view := ListView{
		SectionSlug:   sec.Slug,
		SectionName:   sec.Name,
		DocumentTitle: documentTitle(sec.Name, SiteName),
		TextOnly:      !sec.Targets.ListThumbnails,
		Page:          page,
		Size:          size,
	}

	records, err := s.FetchList(ctx, sec, page, size)
	if err != nil {
		log.Error("failed to load list", sl.Error(err))
		view.State = StateError
		return view
	}

	view.State = StateContent
	view.Cards = make([]Card, 0, len(records))
	for _, rec := range records {
		view.Cards = append(view.Cards, s.card(sec, rec))
	}

	if page > 1 {
		view.PrevPage = page - 1
	}
	if size > 0 && len(records) >= size {
		view.NextPage = page + 1
	}

	log.Debug("list loaded", slog.Int("count", len(view.Cards)))

	return view
}

// Detail renders a detail page. Failures end in the error view.
func (s *Service) Detail(ctx context.Context, sec Section, id string) DetailView {
	const op = "service.content.Detail"

	log := s.log.With(slog.String("op", op), slog.String("section", sec.Slug))

	view := DetailView{
		SectionSlug:   sec.Slug,
		SectionName:   sec.Name,
		DocumentTitle: documentTitle(sec.Name, SiteName),
	}

	rec, err := s.FetchDetail(ctx, sec, id)
	if err != nil {
		log.Error("failed to load detail", slog.String("id", id), sl.Error(err))
		view.State = StateError
		return view
	}

	view.State = StateContent
	view.DocumentTitle = documentTitle(rec.Title, sec.Name, SiteName)
	view.Breadcrumb = Breadcrumb(rec.Title, BreadcrumbLimit)
	view.Title = rec.Title
	view.Date = datefmt.DateTime(rec.CreatedAt, s.loc)
	view.DateTime = rec.CreatedAt
	view.Author = rec.Author
	view.ThumbnailURL = s.ThumbnailURL(sec, rec)
	view.Summary = rec.Summary

	switch {
	case rec.Body != "":
		view.Body = template.HTML(rec.Body)
	case sec.Targets.EmptyBody != "":
		view.Body = template.HTML(sec.Targets.EmptyBody)
	}

	log.Debug("detail loaded", slog.String("id", rec.ID))

	return view
}

func (s *Service) card(sec Section, rec models.Record) Card {
	card := Card{
		ID:        rec.ID,
		Title:     rec.Title,
		Summary:   rec.Summary,
		Date:      datefmt.Date(rec.CreatedAt, s.loc),
		DateTime:  rec.CreatedAt,
		DetailURL: "/" + sec.Slug + "/detail.html?id=" + url.QueryEscape(rec.ID),
	}

	if sec.Targets.ListThumbnails {
		card.ShowImage = true
		card.ImageURL = s.ThumbnailURL(sec, rec)
		card.Placeholder = card.ImageURL == ""
	}

	return card
}

func (s *Service) get(ctx context.Context, rawURL string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %w: %d", ErrLoadFailed, ErrUnexpectedStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	doc, err := envelope.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return doc, nil
}
