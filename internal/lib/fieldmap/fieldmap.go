// Package fieldmap picks record fields out of a decoded backend payload.
package fieldmap

import (
	"encoding/json"
	"strings"

	"bigvalue-web/internal/domain/models"
	"bigvalue-web/internal/lib/envelope"
)

// Field is the list of dotted key paths tried in order for one record field,
// e.g. {"creator.nickname", "creator.username"}.
type Field []string

type FieldMap struct {
	ID           Field
	Title        Field
	Summary      Field
	Body         Field
	CreatedAt    Field
	Author       Field
	ThumbnailID  Field
	ThumbnailURL Field

	// DefaultAuthor is used when no author path yields a value.
	DefaultAuthor string
}

// Press is the field map of the press-release resources.
var Press = FieldMap{
	ID:          Field{"id"},
	Title:       Field{"title"},
	Summary:     Field{"summary"},
	Body:        Field{"content", "body"},
	CreatedAt:   Field{"createAt"},
	Author:      Field{"creator.nickname", "creator.username"},
	ThumbnailID: Field{"thumbnail.id"},
}

func (fm FieldMap) Apply(item map[string]any) models.Record {
	rec := models.Record{
		ID:           fm.ID.pick(item),
		Title:        fm.Title.pick(item),
		Summary:      fm.Summary.pick(item),
		Body:         fm.Body.pick(item),
		CreatedAt:    fm.CreatedAt.pick(item),
		Author:       fm.Author.pick(item),
		ThumbnailID:  fm.ThumbnailID.pick(item),
		ThumbnailURL: fm.ThumbnailURL.pick(item),
	}
	if rec.Author == "" {
		rec.Author = fm.DefaultAuthor
	}
	return rec
}

func (f Field) pick(item map[string]any) string {
	for _, path := range f {
		if s := stringify(envelope.Lookup(item, strings.Split(path, ".")...)); s != "" {
			return s
		}
	}
	return ""
}

func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
