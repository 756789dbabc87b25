package handlers

import (
	"errors"
	"net/url"
	"strconv"

	"mood-backend/internal/models"
	"mood-backend/internal/moodindex"
	"mood-backend/internal/services"
	"mood-backend/internal/utils"
	"mood-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MoodHandler struct {
	service services.RecommenderService
	logger  *logrus.Logger
}

func NewMoodHandler(service services.RecommenderService, logger *logrus.Logger) *MoodHandler {
	return &MoodHandler{
		service: service,
		logger:  logger,
	}
}

// GetMoods godoc
// @Summary List moods
// @Description List every mood of the catalog in catalog order
// @Tags moods
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=MoodsResponse} "Available moods"
// @Router /moods [get]
func (h *MoodHandler) GetMoods(c *fiber.Ctx) error {
	moods := h.service.ListMoods(c.UserContext())

	return utils.SuccessResponse(c, fiber.StatusOK, "Moods retrieved successfully", MoodsResponse{
		Moods: moods,
		Count: len(moods),
	})
}

// GetMoodMovies godoc
// @Summary Get movies for a mood
// @Description Get the movies stored for a mood. Unknown moods fall back to the first mood containing (or contained in) the input.
// @Tags moods
// @Produce json
// @Param mood path string true "Mood name"
// @Success 200 {object} utils.StandardResponse{data=RecommendationResponse} "Recommended movies"
// @Failure 400 {object} utils.StandardResponse "Mood is required"
// @Failure 404 {object} utils.StandardResponse{data=UnknownMoodResponse} "Mood not found"
// @Router /moods/{mood}/movies [get]
func (h *MoodHandler) GetMoodMovies(c *fiber.Ctx) error {
	mood, err := url.PathUnescape(c.Params("mood"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid mood")
	}
	return h.recommend(c, mood)
}

// Recommend godoc
// @Summary Recommend movies
// @Description Recommend movies for a mood. The mood "random" returns one random movie from a random mood.
// @Tags moods
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Mood request"
// @Success 200 {object} utils.StandardResponse{data=RecommendationResponse} "Recommended movies"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 404 {object} utils.StandardResponse{data=UnknownMoodResponse} "Mood not found"
// @Router /recommend [post]
func (h *MoodHandler) Recommend(c *fiber.Ctx) error {
	var req RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validation.Struct(req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) && len(verr.Fields) > 0 && verr.Fields[0].Tag != "required" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, verr.Error())
		}
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Please provide a mood")
	}

	if moodindex.Normalize(req.Mood) == services.RandomMood {
		pick, err := h.service.RandomMovie(c.UserContext(), "")
		if err != nil {
			return h.lookupError(c, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "Random movie picked successfully", RecommendationResponse{
			RequestedMood: services.RandomMood,
			Mood:          pick.Mood,
			Movies:        []models.Movie{pick.Movie},
			Count:         1,
			IsRandom:      true,
		})
	}

	return h.recommend(c, req.Mood)
}

// GetAllMovies godoc
// @Summary List all movies
// @Description List every distinct movie of the catalog, paginated
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.Movie,meta=utils.PaginationMeta} "Movies"
// @Router /movies [get]
func (h *MoodHandler) GetAllMovies(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	page, limit = utils.NormalizePage(page, limit)

	movies := h.service.AllMovies(c.UserContext())
	start, end := utils.PageBounds(page, limit, len(movies))

	meta := utils.CreatePaginationMeta(page, limit, int64(len(movies)))
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies[start:end], meta)
}

// GetRandomMovie godoc
// @Summary Get a random movie
// @Description Pick a random movie, optionally restricted to one mood
// @Tags movies
// @Produce json
// @Param mood query string false "Mood name"
// @Success 200 {object} utils.StandardResponse{data=RandomMovieResponse} "Random movie"
// @Failure 404 {object} utils.StandardResponse "Mood not found or no movies available"
// @Router /movies/random [get]
func (h *MoodHandler) GetRandomMovie(c *fiber.Ctx) error {
	pick, err := h.service.RandomMovie(c.UserContext(), c.Query("mood"))
	if err != nil {
		return h.lookupError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Random movie picked successfully", RandomMovieResponse{
		Mood:  pick.Mood,
		Movie: pick.Movie,
	})
}

// Search godoc
// @Summary Search movies
// @Description Case-insensitive substring search over title, genres and language
// @Tags movies
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} utils.StandardResponse{data=SearchResponse} "Search results"
// @Failure 400 {object} utils.StandardResponse "Search query is required"
// @Router /search [get]
func (h *MoodHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")

	results, err := h.service.Search(c.UserContext(), query)
	if err != nil {
		return h.lookupError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Search completed successfully", SearchResponse{
		Query:   moodindex.Normalize(query),
		Results: results,
		Count:   len(results),
	})
}

func (h *MoodHandler) recommend(c *fiber.Ctx, mood string) error {
	rec, err := h.service.Recommend(c.UserContext(), mood)
	if err != nil {
		return h.lookupError(c, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movies recommended successfully", RecommendationResponse{
		RequestedMood: rec.Requested,
		Mood:          rec.Mood,
		Movies:        rec.Movies,
		Count:         len(rec.Movies),
		FuzzyMatch:    rec.Match == moodindex.MatchFuzzy,
	})
}

func (h *MoodHandler) lookupError(c *fiber.Ctx, err error) error {
	var unknown *moodindex.UnknownMoodError
	switch {
	case errors.As(err, &unknown):
		return utils.ErrorWithDataResponse(c, fiber.StatusNotFound, "Mood \""+unknown.Mood+"\" not found", UnknownMoodResponse{
			Mood:           unknown.Mood,
			AvailableMoods: unknown.Available,
		})
	case errors.Is(err, moodindex.ErrEmptyMood):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Please provide a mood")
	case errors.Is(err, moodindex.ErrEmptyQuery):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Please provide a search query")
	case errors.Is(err, moodindex.ErrNoMovies):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No movies available")
	default:
		h.logger.WithError(err).WithField("path", c.Path()).Error("Lookup failed")
		return err
	}
}
