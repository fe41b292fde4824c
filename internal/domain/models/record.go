package models

// Record is a press-release item (newsroom article, notice, use case) after
// its fields were picked out of the backend payload.
type Record struct {
	ID           string `json:"id,omitempty"`
	Title        string `json:"title"`
	Summary      string `json:"summary,omitempty"`
	Body         string `json:"body,omitempty"`
	CreatedAt    string `json:"createAt,omitempty"`
	Author       string `json:"author,omitempty"`
	ThumbnailID  string `json:"thumbnail_id,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}
