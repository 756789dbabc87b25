package models

import "time"

// MoodRecord is the database form of a catalog mood.
type MoodRecord struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Position  int         `gorm:"not null;index" json:"position"`
	Movies    []MoodMovie `gorm:"foreignKey:MoodID;constraint:OnDelete:CASCADE" json:"movies,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (MoodRecord) TableName() string {
	return "moods"
}

// MoodMovie is a movie listed under one mood. The same title may appear under several moods.
type MoodMovie struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MoodID    uint      `gorm:"index;not null" json:"mood_id"`
	Position  int       `gorm:"not null" json:"position"`
	Title     string    `gorm:"not null;index" json:"title"`
	Year      int       `gorm:"index" json:"year"`
	Language  string    `gorm:"index;size:50" json:"language"`
	Genre     []string  `gorm:"serializer:json;type:text" json:"genre"`
	Poster    string    `json:"poster"`
	CreatedAt time.Time `json:"created_at"`
}

func (MoodMovie) TableName() string {
	return "mood_movies"
}

func (m MoodMovie) ToMovie() Movie {
	return Movie{
		Title:    m.Title,
		Year:     m.Year,
		Language: m.Language,
		Genre:    m.Genre,
		Poster:   m.Poster,
	}
}

// ToCatalog rebuilds the catalog from mood records ordered by position.
func ToCatalog(records []MoodRecord) *Catalog {
	catalog := &Catalog{Entries: make([]MoodEntry, 0, len(records))}
	for _, r := range records {
		movies := make([]Movie, 0, len(r.Movies))
		for _, m := range r.Movies {
			movies = append(movies, m.ToMovie())
		}
		catalog.Entries = append(catalog.Entries, MoodEntry{Mood: r.Name, Movies: movies})
	}
	return catalog
}

// FromCatalog converts a catalog into mood records ready to be inserted.
func FromCatalog(c *Catalog) []MoodRecord {
	records := make([]MoodRecord, 0, len(c.Entries))
	for i, e := range c.Entries {
		movies := make([]MoodMovie, 0, len(e.Movies))
		for j, m := range e.Movies {
			movies = append(movies, MoodMovie{
				Position: j,
				Title:    m.Title,
				Year:     m.Year,
				Language: m.Language,
				Genre:    m.Genre,
				Poster:   m.Poster,
			})
		}
		records = append(records, MoodRecord{Name: e.Mood, Position: i, Movies: movies})
	}
	return records
}
