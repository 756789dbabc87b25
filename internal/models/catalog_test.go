package models

import (
	"errors"
	"testing"
)

const sampleCatalog = `{
	"sad": [{"title": "Kal Ho Naa Ho", "year": 2003, "language": "Hindi", "genre": ["Drama", "Romance"], "poster": "https://posters.example.com/khnh.jpg"}],
	"happy": [
		{"title": "3 Idiots", "year": 2009, "language": "Hindi", "genre": ["Comedy", "Drama"], "poster": "https://posters.example.com/3i.jpg"},
		{"title": "Jathi Ratnalu", "year": 2021, "language": "Telugu", "genre": ["Comedy"], "poster": "https://posters.example.com/jr.jpg"}
	],
	"angry": []
}`

func TestDecodeCatalog_PreservesKeyOrder(t *testing.T) {
	c, err := DecodeCatalog([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}

	want := []string{"sad", "happy", "angry"}
	if len(c.Entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(c.Entries), len(want))
	}
	for i, mood := range want {
		if c.Entries[i].Mood != mood {
			t.Errorf("entry %d mood = %q, want %q", i, c.Entries[i].Mood, mood)
		}
	}

	if got := c.Entries[1].Movies[1].Title; got != "Jathi Ratnalu" {
		t.Errorf("second happy movie = %q, want Jathi Ratnalu", got)
	}
	if c.Entries[2].Movies == nil {
		t.Error("empty mood list should decode to an empty, non-nil slice")
	}
	if c.MovieCount() != 3 {
		t.Errorf("MovieCount() = %d, want 3", c.MovieCount())
	}
}

func TestDecodeCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"array document", `[{"title": "x"}]`},
		{"truncated", `{"happy": [`},
		{"wrong field type", `{"happy": [{"title": "x", "year": "2001"}]}`},
		{"not json", `happy,sad`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeCatalog([]byte(tt.data)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestDecodeCatalog_ArrayIsNotObject(t *testing.T) {
	_, err := DecodeCatalog([]byte(`[]`))
	if !errors.Is(err, ErrCatalogNotObject) {
		t.Fatalf("err = %v, want ErrCatalogNotObject", err)
	}
}

func TestCatalog_MarshalKeepsOrder(t *testing.T) {
	c, err := DecodeCatalog([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}

	data, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}

	again, err := DecodeCatalog(data)
	if err != nil {
		t.Fatalf("DecodeCatalog(marshalled) error = %v", err)
	}
	for i := range c.Entries {
		if again.Entries[i].Mood != c.Entries[i].Mood {
			t.Errorf("entry %d mood = %q, want %q", i, again.Entries[i].Mood, c.Entries[i].Mood)
		}
	}
}

func TestMovie_GenreStringAndKey(t *testing.T) {
	m := Movie{Title: "RRR", Year: 2022, Language: "Telugu", Genre: []string{"Action", "Drama"}}

	if got := m.GenreString(); got != "Action, Drama" {
		t.Errorf("GenreString() = %q", got)
	}

	other := Movie{Title: "rrr", Year: 2022, Language: "TELUGU"}
	if m.Key() != other.Key() {
		t.Errorf("Key() should ignore case: %+v vs %+v", m.Key(), other.Key())
	}

	a := Movie{Title: "Up|Hindi", Year: 2009, Language: "x"}
	b := Movie{Title: "Up", Year: 2009, Language: "Hindi|x"}
	if a.Key() == b.Key() {
		t.Errorf("different movies share key %+v", a.Key())
	}
}

func TestCatalogRecordsConversion(t *testing.T) {
	c, err := DecodeCatalog([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("DecodeCatalog() error = %v", err)
	}

	records := FromCatalog(c)
	if records[1].Position != 1 || records[1].Movies[1].Position != 1 {
		t.Fatalf("positions not assigned: %+v", records[1])
	}

	back := ToCatalog(records)
	if back.Entries[1].Movies[0].Title != "3 Idiots" {
		t.Errorf("round trip lost movie order: %+v", back.Entries[1].Movies)
	}
	if len(back.Entries[2].Movies) != 0 {
		t.Errorf("angry should stay empty, got %d movies", len(back.Entries[2].Movies))
	}
}
