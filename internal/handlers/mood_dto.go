package handlers

import "mood-backend/internal/models"

type RecommendRequest struct {
	Mood string `json:"mood" validate:"required,max=100" example:"happy"`
}

type MoodsResponse struct {
	Moods []string `json:"moods" example:"happy,sad,romantic"`
	Count int      `json:"count" example:"3"`
}

type RecommendationResponse struct {
	RequestedMood string         `json:"requested_mood" example:"hap"`
	Mood          string         `json:"mood" example:"happy"`
	Movies        []models.Movie `json:"movies"`
	Count         int            `json:"count" example:"4"`
	IsRandom      bool           `json:"is_random" example:"false"`
	FuzzyMatch    bool           `json:"fuzzy_match" example:"true"`
}

type UnknownMoodResponse struct {
	Mood           string   `json:"mood" example:"bored"`
	AvailableMoods []string `json:"available_moods" example:"happy,sad,romantic"`
}

type RandomMovieResponse struct {
	Mood  string       `json:"mood" example:"excited"`
	Movie models.Movie `json:"movie"`
}

type SearchResponse struct {
	Query   string         `json:"query" example:"telugu"`
	Results []models.Movie `json:"results"`
	Count   int            `json:"count" example:"12"`
}
