package services

import (
	"context"
	"errors"
	"time"

	"mood-backend/internal/metrics"
	"mood-backend/internal/models"
	"mood-backend/internal/moodindex"
	"mood-backend/internal/repository"
	"mood-backend/internal/validation"

	"github.com/sirupsen/logrus"
)

// RandomMood is the mood keyword that asks for one random pick.
const RandomMood = "random"

type RecommenderService interface {
	ListMoods(ctx context.Context) []string
	Recommend(ctx context.Context, mood string) (*moodindex.Recommendation, error)
	RandomMovie(ctx context.Context, mood string) (*moodindex.Pick, error)
	Search(ctx context.Context, query string) ([]models.Movie, error)
	AllMovies(ctx context.Context) []models.Movie
	Stats() models.DatasetStats
}

type recommenderService struct {
	index  *moodindex.Index
	stats  models.DatasetStats
	logger *logrus.Logger
}

// NewRecommenderService loads the catalog from repo and builds the mood index.
// A failed load is logged and leaves the service running on an empty index.
func NewRecommenderService(ctx context.Context, repo repository.CatalogRepository, loadTimeout time.Duration, logger *logrus.Logger, opts ...moodindex.Option) RecommenderService {
	stats := models.DatasetStats{Source: repo.Source()}

	if loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, loadTimeout)
		defer cancel()
	}

	catalog, err := repo.Load(ctx)
	if err != nil {
		logger.WithError(err).WithField("source", repo.Source()).Error("Failed to load mood catalog, serving an empty index")
		metrics.CatalogLoadErrors.WithLabelValues(repo.Source()).Inc()
		stats.LoadError = err.Error()
		catalog = nil
	} else {
		catalog, stats.Skipped = sanitizeCatalog(catalog, logger)
	}

	index := moodindex.New(catalog, opts...)
	stats.Moods = index.Len()
	stats.Movies = index.MovieCount()
	metrics.RecordCatalog(stats.Moods, stats.Movies, stats.Skipped)

	logger.WithFields(logrus.Fields{
		"source":  stats.Source,
		"moods":   stats.Moods,
		"movies":  stats.Movies,
		"skipped": stats.Skipped,
	}).Info("Mood catalog loaded")

	return &recommenderService{
		index:  index,
		stats:  stats,
		logger: logger,
	}
}

// sanitizeCatalog drops movie records that fail validation. The mood itself is kept.
func sanitizeCatalog(c *models.Catalog, logger *logrus.Logger) (*models.Catalog, int) {
	skipped := 0
	clean := &models.Catalog{Entries: make([]models.MoodEntry, 0, len(c.Entries))}
	for _, entry := range c.Entries {
		movies := make([]models.Movie, 0, len(entry.Movies))
		for i, movie := range entry.Movies {
			if err := validation.Struct(movie); err != nil {
				skipped++
				logger.WithError(err).WithFields(logrus.Fields{
					"mood":     entry.Mood,
					"position": i,
					"title":    movie.Title,
				}).Warn("Skipping invalid movie record")
				continue
			}
			movies = append(movies, movie)
		}
		clean.Entries = append(clean.Entries, models.MoodEntry{Mood: entry.Mood, Movies: movies})
	}
	return clean, skipped
}

func (s *recommenderService) ListMoods(ctx context.Context) []string {
	return s.index.Moods()
}

func (s *recommenderService) Recommend(ctx context.Context, mood string) (*moodindex.Recommendation, error) {
	rec, err := s.index.Recommend(mood)
	if err != nil {
		s.recordFailure("recommend", mood, err)
		return nil, err
	}

	if rec.Match == moodindex.MatchFuzzy {
		s.logger.WithFields(logrus.Fields{
			"requested": rec.Requested,
			"resolved":  rec.Mood,
		}).Info("Mood resolved by fuzzy match")
	}
	metrics.RecordLookup("recommend", string(rec.Match))
	return rec, nil
}

func (s *recommenderService) RandomMovie(ctx context.Context, mood string) (*moodindex.Pick, error) {
	if moodindex.Normalize(mood) == RandomMood {
		mood = ""
	}

	pick, err := s.index.RandomMovie(mood)
	if err != nil {
		s.recordFailure("random", mood, err)
		return nil, err
	}

	metrics.RecordLookup("random", string(pick.Match))
	return pick, nil
}

func (s *recommenderService) Search(ctx context.Context, query string) ([]models.Movie, error) {
	results, err := s.index.Search(query)
	if err != nil {
		s.recordFailure("search", query, err)
		return nil, err
	}

	metrics.SearchResults.Observe(float64(len(results)))
	outcome := metrics.OutcomeExact
	if len(results) == 0 {
		outcome = metrics.OutcomeMiss
	}
	metrics.RecordLookup("search", outcome)

	s.logger.WithFields(logrus.Fields{
		"query":   moodindex.Normalize(query),
		"results": len(results),
	}).Debug("Search completed")
	return results, nil
}

func (s *recommenderService) AllMovies(ctx context.Context) []models.Movie {
	return s.index.All()
}

func (s *recommenderService) Stats() models.DatasetStats {
	return s.stats
}

func (s *recommenderService) recordFailure(operation, input string, err error) {
	outcome := metrics.OutcomeInvalid
	switch {
	case errors.Is(err, moodindex.ErrUnknownMood):
		outcome = metrics.OutcomeMiss
	case errors.Is(err, moodindex.ErrNoMovies):
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordLookup(operation, outcome)

	s.logger.WithError(err).WithFields(logrus.Fields{
		"operation": operation,
		"input":     moodindex.Normalize(input),
	}).Debug("Lookup did not match")
}
