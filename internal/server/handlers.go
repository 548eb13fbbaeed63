package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/roach88/sandhi/internal/engine"
	"github.com/roach88/sandhi/internal/ir"
)

const maxSuggestLimit = 20

// JoinRequest is the body of POST /api/join.
type JoinRequest struct {
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
}

// SuggestResponse is the body returned by GET /api/suggest.
type SuggestResponse struct {
	Word        string          `json:"word"`
	Suggestions []ir.Suggestion `json:"suggestions"`
}

// HintsResponse is the body returned by GET /api/hints.
type HintsResponse struct {
	Word  string    `json:"word"`
	Hints []ir.Hint `json:"hints"`
}

// StatsResponse is the body returned by GET /api/stats.
type StatsResponse struct {
	ir.Stats
	SamasaMode    string `json:"samasa_mode"`
	EngineVersion string `json:"engine_version"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) join(c *fiber.Ctx) error {
	var req JoinRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if req.Word1 == "" && req.Word2 == "" {
		return fiber.NewError(fiber.StatusBadRequest, "word1 or word2 is required")
	}
	return c.JSON(s.eng.JoinWords(req.Word1, req.Word2))
}

func (s *Server) suggest(c *fiber.Ctx) error {
	word := c.Query("word")
	if word == "" {
		return fiber.NewError(fiber.StatusBadRequest, "word is required")
	}

	limit := engine.DefaultSuggestionLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSuggestLimit {
			return fiber.NewError(fiber.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxSuggestLimit))
		}
		limit = n
	}

	suggestions := s.eng.Suggest(word, limit)
	if suggestions == nil {
		suggestions = []ir.Suggestion{}
	}
	return c.JSON(SuggestResponse{Word: word, Suggestions: suggestions})
}

func (s *Server) hints(c *fiber.Ctx) error {
	word := c.Query("word")
	if word == "" {
		return fiber.NewError(fiber.StatusBadRequest, "word is required")
	}

	hints := s.eng.Hints(word)
	if hints == nil {
		hints = []ir.Hint{}
	}
	return c.JSON(HintsResponse{Word: word, Hints: hints})
}

func (s *Server) stats(c *fiber.Ctx) error {
	return c.JSON(StatsResponse{
		Stats:         s.eng.Stats(),
		SamasaMode:    s.eng.SamasaMode().String(),
		EngineVersion: ir.EngineVersion,
	})
}
