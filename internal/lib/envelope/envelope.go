// Package envelope unwraps the press-release backend responses.
//
// The backend has answered with several wrappers over time. The list and
// detail lookups below are a compatibility shim over those shapes; the
// authoritative shape still has to be settled with the backend owner.
package envelope

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMalformed = errors.New("malformed payload")
	ErrNoRecord  = errors.New("no record in payload")
)

// listPaths is the order list shapes are tried in. The empty path is the
// bare array.
var listPaths = [][]string{
	{"page", "content"},
	{"data", "page", "content"},
	{"data", "content"},
	{"content"},
	{"data"},
	{},
}

// Decode parses a JSON document. Numbers stay json.Number so ids are not
// turned into floats.
func Decode(data []byte) (any, error) {
	const op = "envelope.Decode"

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrMalformed, err)
	}

	return doc, nil
}

// Items returns the records of a list response. The first shape whose value
// is an array wins; when none matches the list is empty.
func Items(doc any) []map[string]any {
	for _, path := range listPaths {
		arr, ok := lookup(doc, path).([]any)
		if !ok {
			continue
		}

		items := make([]map[string]any, 0, len(arr))
		for _, v := range arr {
			if item, ok := v.(map[string]any); ok {
				items = append(items, item)
			}
		}
		return items
	}

	return []map[string]any{}
}

// Record returns the record of a detail response: {data: record} or the bare
// record. A record without a title is treated as missing.
func Record(doc any) (map[string]any, error) {
	const op = "envelope.Record"

	payload := doc
	if m, ok := doc.(map[string]any); ok && truthy(m["data"]) {
		payload = m["data"]
	}

	rec, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrNoRecord)
	}
	if title, ok := rec["title"]; !ok || title == nil {
		return nil, fmt.Errorf("%s: %w: title is absent", op, ErrNoRecord)
	}

	return rec, nil
}

// Lookup walks a dotted key path through nested objects.
func Lookup(doc any, path ...string) any {
	return lookup(doc, path)
}

func lookup(doc any, path []string) any {
	cur := doc
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[key]
	}
	return cur
}

func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}
