package models

import "strings"

// Movie is a single recommendation record as stored in the mood catalog.
type Movie struct {
	Title    string   `json:"title" validate:"required,max=300" example:"Zindagi Na Milegi Dobara"`
	Year     int      `json:"year" validate:"gte=1888,lte=2100" example:"2011"`
	Language string   `json:"language" validate:"required,max=50" example:"Hindi"`
	Genre    []string `json:"genre" validate:"dive,required" example:"Comedy,Drama"`
	Poster   string   `json:"poster" validate:"omitempty,url" example:"https://posters.example.com/zndg.jpg"`
}

// GenreString joins the genre list the way it is shown to users and matched by search.
func (m Movie) GenreString() string {
	return strings.Join(m.Genre, ", ")
}

// MovieKey identifies a movie independently of the mood it is listed under.
type MovieKey struct {
	title    string
	language string
	year     int
}

func (m Movie) Key() MovieKey {
	return MovieKey{
		title:    strings.ToLower(m.Title),
		language: strings.ToLower(m.Language),
		year:     m.Year,
	}
}

// DatasetStats describes the catalog the service loaded at startup.
type DatasetStats struct {
	Source    string `json:"source" example:"file"`
	Moods     int    `json:"moods" example:"8"`
	Movies    int    `json:"movies" example:"32"`
	Skipped   int    `json:"skipped_records" example:"0"`
	LoadError string `json:"load_error,omitempty"`
}
