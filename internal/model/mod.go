// Package model contains domain entities and DTOs used across layers.
// I keep it lean: data shapes plus the JSON encoding they need.
package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Mod is a single catalog entry as stored in the mods table.
// Nullable columns are pointers so they render as JSON null instead of zero values.
type Mod struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Icon         *string    `json:"icon"`
	Author       string     `json:"author"`
	AuthorLink   *string    `json:"author_link"`
	Description  *string    `json:"description"`
	Tags         *Tags      `json:"tags"`
	ModLink      string     `json:"mod_link"`
	DownloadLink *string    `json:"download_link"`
	Rating       float64    `json:"rating"`
	Reviews      int64      `json:"reviews"`
	Downloads    int64      `json:"downloads"`
	LastUpdated  *time.Time `json:"last_updated"`
}

// Tags holds the raw tags column. Ingestion writes either a plain prefix label
// ("Vehicles") or a JSON array (["Vehicles","Cars"]); both are passed through.
type Tags string

// MarshalJSON emits stored JSON arrays verbatim and everything else as a string.
func (t Tags) MarshalJSON() ([]byte, error) {
	s := strings.TrimSpace(string(t))
	if strings.HasPrefix(s, "[") && json.Valid([]byte(s)) {
		return []byte(s), nil
	}
	return json.Marshal(string(t))
}

// NewTags converts a nullable column value into *Tags.
func NewTags(s *string) *Tags {
	if s == nil {
		return nil
	}
	t := Tags(*s)
	return &t
}

// Pagination is the metadata block of a listing page.
type Pagination struct {
	Limit     int `json:"limit"`
	TotalRows int `json:"total_rows"`
	Pages     int `json:"pages"`
}

// ModPage is the listing envelope returned by GET /api/v1/mods.
type ModPage struct {
	Pagination Pagination `json:"pagination"`
	Mods       []Mod      `json:"mods"`
}
