package content

import "bigvalue-web/internal/lib/fieldmap"

// Section is one content type of the site: where its records live on the
// backend, how their fields are read and how the pages show them.
type Section struct {
	// Slug is the site path segment, e.g. "newsroom".
	Slug string
	// Name goes into the document title: "<title> - <Name> - BigValue".
	Name string
	// Resource is the backend path segment under the API base URL.
	Resource string

	Fields  fieldmap.FieldMap
	Targets Targets
}

// Targets describes the page slots a section fills.
type Targets struct {
	ListTemplate   string
	DetailTemplate string

	// ListThumbnails shows an image on every list card, a placeholder when
	// the record has none. Text-only lists leave it off.
	ListThumbnails bool
	// EmptyBody is rendered when the record has no body. Empty hides the body.
	EmptyBody string
}

const (
	ListTemplate   = "list.page.html"
	DetailTemplate = "detail.page.html"
)

func DefaultSections() []Section {
	customerStudies := fieldmap.Press
	customerStudies.Author = fieldmap.Field{"author"}
	customerStudies.ThumbnailURL = fieldmap.Field{"thumbnail.url"}
	customerStudies.DefaultAuthor = "BigValue"

	return []Section{
		{
			Slug:     "newsroom",
			Name:     "Newsroom",
			Resource: "news-room",
			Fields:   fieldmap.Press,
			Targets: Targets{
				ListTemplate:   ListTemplate,
				DetailTemplate: DetailTemplate,
				ListThumbnails: true,
			},
		},
		{
			Slug:     "notice",
			Name:     "Notice",
			Resource: "notice",
			Fields:   fieldmap.Press,
			Targets: Targets{
				ListTemplate:   ListTemplate,
				DetailTemplate: DetailTemplate,
			},
		},
		{
			Slug:     "ai-use-case",
			Name:     "AI Use Case",
			Resource: "ai-use-case",
			Fields:   fieldmap.Press,
			Targets: Targets{
				ListTemplate:   ListTemplate,
				DetailTemplate: DetailTemplate,
				ListThumbnails: true,
			},
		},
		{
			// Customer studies are served from the use case resource.
			Slug:     "customer-studies",
			Name:     "Customer Studies",
			Resource: "ai-use-case",
			Fields:   customerStudies,
			Targets: Targets{
				ListTemplate:   ListTemplate,
				DetailTemplate: DetailTemplate,
				ListThumbnails: true,
				EmptyBody:      "<p>내용이 없습니다.</p>",
			},
		},
	}
}
