package content

import "html/template"

type State string

const (
	StateContent State = "content"
	StateError   State = "error"
)

const (
	BreadcrumbLimit = 30
	SiteName        = "BigValue"
)

type ListView struct {
	SectionSlug   string
	SectionName   string
	DocumentTitle string
	State         State
	TextOnly      bool
	Cards         []Card

	Page     int
	Size     int
	PrevPage int
	NextPage int
}

// Card is one entry of a list page.
type Card struct {
	ID        string
	Title     string
	Summary   string
	Date      string
	DateTime  string
	DetailURL string

	ShowImage   bool
	Placeholder bool
	ImageURL    string
}

type DetailView struct {
	SectionSlug   string
	SectionName   string
	DocumentTitle string
	State         State

	Breadcrumb   string
	Title        string
	Date         string
	DateTime     string
	Author       string
	ThumbnailURL string
	Summary      string
	Body         template.HTML
}

func (v ListView) Failed() bool   { return v.State == StateError }
func (v DetailView) Failed() bool { return v.State == StateError }

// Breadcrumb cuts titles longer than limit characters and appends "...".
func Breadcrumb(title string, limit int) string {
	runes := []rune(title)
	if len(runes) <= limit {
		return title
	}
	return string(runes[:limit]) + "..."
}

func documentTitle(parts ...string) string {
	title := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if title != "" {
			title += " - "
		}
		title += p
	}
	return title
}
