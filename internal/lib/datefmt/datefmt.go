package datefmt

import (
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// zonedLayouts carry an offset; localLayouts are read in the viewer's zone.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999-0700",
	}
	localLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
		DateLayout,
	}
)

// Parse reads the backend ISO datetime. Values without an offset are taken
// as local time of loc.
func Parse(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// Date renders YYYY-MM-DD in loc, or "" when value is not a date.
func Date(value string, loc *time.Location) string {
	return format(value, loc, DateLayout)
}

// DateTime renders YYYY-MM-DD HH:MM in loc, or "" when value is not a date.
func DateTime(value string, loc *time.Location) string {
	return format(value, loc, DateTimeLayout)
}

func format(value string, loc *time.Location, layout string) string {
	t, ok := Parse(value, loc)
	if !ok {
		return ""
	}
	return t.In(loc).Format(layout)
}
