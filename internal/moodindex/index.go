// Package moodindex answers mood lookups over a read-only catalog.
//
// An Index is built once from a models.Catalog and never changes afterwards, so
// it can be shared by any number of concurrent readers. Mood names are
// normalized (trimmed, lowercased) on the way in and on every lookup.
package moodindex

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"mood-backend/internal/models"
)

var (
	ErrEmptyMood   = errors.New("mood is required")
	ErrEmptyQuery  = errors.New("search query is required")
	ErrNoMovies    = errors.New("no movies available")
	ErrUnknownMood = errors.New("unknown mood")
)

// UnknownMoodError is returned when a mood matches neither exactly nor by substring.
type UnknownMoodError struct {
	Mood      string
	Available []string
}

func (e *UnknownMoodError) Error() string {
	return fmt.Sprintf("mood %q not found, available moods: %s", e.Mood, strings.Join(e.Available, ", "))
}

func (e *UnknownMoodError) Is(target error) bool {
	return target == ErrUnknownMood
}

// MatchKind says how a requested mood was resolved.
type MatchKind string

const (
	MatchExact  MatchKind = "exact"
	MatchFuzzy  MatchKind = "fuzzy"
	MatchRandom MatchKind = "random"
)

// Recommendation is the answer to a mood lookup.
type Recommendation struct {
	Requested string
	Mood      string
	Match     MatchKind
	Movies    []models.Movie
}

// Pick is a single randomly chosen movie and the mood it was drawn from.
type Pick struct {
	Mood  string
	Match MatchKind
	Movie models.Movie
}

type Index struct {
	moods  []string
	movies map[string][]models.Movie

	mu  sync.Mutex
	rng *rand.Rand
}

type Option func(*Index)

// WithRand makes random picks use r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(ix *Index) {
		ix.rng = r
	}
}

// Normalize is the canonical form of a mood name or query.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// New builds an index from c. A nil catalog yields an empty index.
// Moods whose normalized name is blank are dropped; a mood that appears twice
// keeps its first position and collects the movies of both entries.
func New(c *models.Catalog, opts ...Option) *Index {
	ix := &Index{movies: make(map[string][]models.Movie)}
	for _, opt := range opts {
		opt(ix)
	}
	if c == nil {
		return ix
	}

	for _, e := range c.Entries {
		mood := Normalize(e.Mood)
		if mood == "" {
			continue
		}
		existing, seen := ix.movies[mood]
		if !seen {
			ix.moods = append(ix.moods, mood)
			existing = make([]models.Movie, 0, len(e.Movies))
		}
		ix.movies[mood] = append(existing, e.Movies...)
	}
	return ix
}

// Moods lists every mood in catalog order.
func (ix *Index) Moods() []string {
	return slices.Clone(ix.moods)
}

func (ix *Index) Len() int {
	return len(ix.moods)
}

// MovieCount counts movie records over all moods, duplicates included.
func (ix *Index) MovieCount() int {
	n := 0
	for _, movies := range ix.movies {
		n += len(movies)
	}
	return n
}

// Resolve maps a user supplied mood onto a catalog mood: exact match first,
// then the first mood (in catalog order) that contains the input or is
// contained in it.
func (ix *Index) Resolve(mood string) (string, MatchKind, error) {
	mood = Normalize(mood)
	if mood == "" {
		return "", "", ErrEmptyMood
	}
	if _, ok := ix.movies[mood]; ok {
		return mood, MatchExact, nil
	}
	for _, m := range ix.moods {
		if strings.Contains(m, mood) || strings.Contains(mood, m) {
			return m, MatchFuzzy, nil
		}
	}
	return "", "", &UnknownMoodError{Mood: mood, Available: ix.Moods()}
}

// Recommend returns the movies stored for mood, falling back to fuzzy resolution.
func (ix *Index) Recommend(mood string) (*Recommendation, error) {
	resolved, match, err := ix.Resolve(mood)
	if err != nil {
		return nil, err
	}
	return &Recommendation{
		Requested: Normalize(mood),
		Mood:      resolved,
		Match:     match,
		Movies:    slices.Clone(ix.movies[resolved]),
	}, nil
}

// RandomMovie picks a movie uniformly from mood, or from a random mood when
// mood is empty. Moods without movies are never drawn in the latter case.
func (ix *Index) RandomMovie(mood string) (*Pick, error) {
	if Normalize(mood) != "" {
		resolved, match, err := ix.Resolve(mood)
		if err != nil {
			return nil, err
		}
		movies := ix.movies[resolved]
		if len(movies) == 0 {
			return nil, fmt.Errorf("mood %q: %w", resolved, ErrNoMovies)
		}
		return &Pick{Mood: resolved, Match: match, Movie: movies[ix.intN(len(movies))]}, nil
	}

	candidates := make([]string, 0, len(ix.moods))
	for _, m := range ix.moods {
		if len(ix.movies[m]) > 0 {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return nil, ErrNoMovies
	}

	picked := candidates[ix.intN(len(candidates))]
	movies := ix.movies[picked]
	return &Pick{Mood: picked, Match: MatchRandom, Movie: movies[ix.intN(len(movies))]}, nil
}

// Search returns every distinct movie whose title, joined genres or language
// contains query, ignoring case. Results follow catalog order.
func (ix *Index) Search(query string) ([]models.Movie, error) {
	query = Normalize(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	results := make([]models.Movie, 0)
	seen := make(map[models.MovieKey]struct{})
	for _, mood := range ix.moods {
		for _, movie := range ix.movies[mood] {
			if !matches(movie, query) {
				continue
			}
			if _, dup := seen[movie.Key()]; dup {
				continue
			}
			seen[movie.Key()] = struct{}{}
			results = append(results, movie)
		}
	}
	return results, nil
}

// All returns every distinct movie in catalog order.
func (ix *Index) All() []models.Movie {
	all := make([]models.Movie, 0, ix.MovieCount())
	seen := make(map[models.MovieKey]struct{})
	for _, mood := range ix.moods {
		for _, movie := range ix.movies[mood] {
			if _, dup := seen[movie.Key()]; dup {
				continue
			}
			seen[movie.Key()] = struct{}{}
			all = append(all, movie)
		}
	}
	return all
}

func matches(m models.Movie, query string) bool {
	return strings.Contains(strings.ToLower(m.Title), query) ||
		strings.Contains(strings.ToLower(m.GenreString()), query) ||
		strings.Contains(strings.ToLower(m.Language), query)
}

func (ix *Index) intN(n int) int {
	if ix.rng == nil {
		return rand.IntN(n)
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.rng.IntN(n)
}
