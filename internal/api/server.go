// Package api exposes the wellness engine over HTTP.
package api

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/mindhaven/mindhaven/internal/breathing"
	"github.com/mindhaven/mindhaven/internal/mood"
	"github.com/mindhaven/mindhaven/internal/types"
)

// MoodService abstracts the orchestration layer so handlers stay thin.
type MoodService interface {
	Submit(ctx context.Context, userID, text, emoji string) (types.MoodEntryResult, error)
	History(ctx context.Context, userID, period string) ([]types.MoodObservation, error)
	Dashboard(ctx context.Context, userID string) (types.Dashboard, error)
}

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
}

// Server exposes the Fiber application.
type Server struct {
	app   *fiber.App
	moods MoodService
	cfg   Config
}

// NewServer wires handlers and middleware.
func NewServer(cfg Config, moods MoodService) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	srv := &Server{app: app, moods: moods, cfg: cfg}
	srv.registerRoutes()
	return srv
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()
	return s.app.Listen(s.cfg.Addr)
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")
	api.Post("/mood", s.handleSubmitMood)
	api.Get("/mood/history", s.handleMoodHistory)
	api.Get("/dashboard", s.handleDashboard)
	api.Get("/breathing/patterns", s.handleBreathingPatterns)
}

type moodEntryRequest struct {
	UserID   string `json:"user_id"`
	MoodText string `json:"mood_text"`
	Emoji    string `json:"emoji"`
}

func (s *Server) handleSubmitMood(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var payload moodEntryRequest
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}
	if payload.UserID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "user_id is required")
	}

	result, err := s.moods.Submit(ctx, payload.UserID, payload.MoodText, payload.Emoji)
	switch {
	case errors.Is(err, mood.ErrEmptyMood):
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Mood text cannot be empty.")
	case errors.Is(err, mood.ErrClassification):
		return fiber.NewError(fiber.StatusBadGateway, "Sentiment analysis failed.")
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "Could not save mood entry.")
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"entry_id":   result.EntryID,
		"label":      result.Label,
		"confidence": result.Confidence,
		"reason":     "Mood detected successfully",
	})
}

func (s *Server) handleMoodHistory(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Query("user_id")
	if userID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "user_id is required")
	}

	entries, err := s.moods.History(ctx, userID, c.Query("period", "week"))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not load mood history.")
	}
	return c.JSON(fiber.Map{"data": entries, "meta": fiber.Map{"count": len(entries)}})
}

func (s *Server) handleDashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	userID := c.Query("user_id")
	if userID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "user_id is required")
	}

	dashboard, err := s.moods.Dashboard(ctx, userID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not build dashboard.")
	}
	return c.JSON(dashboard)
}

func (s *Server) handleBreathingPatterns(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": breathing.Patterns()})
}
