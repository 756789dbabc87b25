package models

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var ErrCatalogNotObject = errors.New("catalog must be a JSON object of mood -> movies")

// MoodEntry is one mood of the catalog together with its movies.
type MoodEntry struct {
	Mood   string  `json:"mood"`
	Movies []Movie `json:"movies"`
}

// Catalog is the mood -> movies document in the order it was written.
// It (un)marshals as a plain JSON object; a Go map would lose the key order.
type Catalog struct {
	Entries []MoodEntry
}

// DecodeCatalog parses a catalog document.
func DecodeCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// MovieCount returns the number of movie records over all moods.
func (c *Catalog) MovieCount() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, e := range c.Entries {
		n += len(e.Movies)
	}
	return n
}

func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrCatalogNotObject
	}

	entries := make([]MoodEntry, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		mood, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected catalog key %v", tok)
		}

		var movies []Movie
		if err := dec.Decode(&movies); err != nil {
			return fmt.Errorf("mood %q: %w", mood, err)
		}
		if movies == nil {
			movies = []Movie{}
		}
		entries = append(entries, MoodEntry{Mood: mood, Movies: movies})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	c.Entries = entries
	return nil
}

func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Mood)
		if err != nil {
			return nil, err
		}
		movies := e.Movies
		if movies == nil {
			movies = []Movie{}
		}
		value, err := json.Marshal(movies)
		if err != nil {
			return nil, fmt.Errorf("mood %q: %w", e.Mood, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
