package routes

import (
	"mood-backend/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, moodHandler *handlers.MoodHandler) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	moods := v1.Group("/moods")
	{
		moods.Get("/", moodHandler.GetMoods)
		moods.Get("/:mood/movies", moodHandler.GetMoodMovies)
	}

	movies := v1.Group("/movies")
	{
		movies.Get("/", moodHandler.GetAllMovies)
		movies.Get("/random", moodHandler.GetRandomMovie)
	}

	v1.Post("/recommend", moodHandler.Recommend)
	v1.Get("/search", moodHandler.Search)
}
