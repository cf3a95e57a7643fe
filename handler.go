package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler holds shared dependencies for the API routes. The recommendation
// pipeline is pure, so for now that's nothing beyond a place to hang methods.
type Handler struct{}

/* ─── Request / Response types ───────────────────────────────────────── */

// recommendationRequest is the request body for POST /api/recommendation.
// Same six fields the interactive command collects, same predicates.
type recommendationRequest struct {
	Gender        string  `json:"gender"`
	Age           int     `json:"age"`
	HeightCM      float64 `json:"height_cm"`
	WeightKG      float64 `json:"weight_kg"`
	ActivityLevel int     `json:"activity_level"`
	Goal          int     `json:"goal"`
}

// recommendationResponse mirrors the terminal output: either a numeric
// intake with its message, or a caution with the number suppressed.
type recommendationResponse struct {
	Intake  *int   `json:"intake,omitempty"`
	Caution bool   `json:"caution"`
	Message string `json:"message"`
}

// validate checks every field against the interview's predicates and
// returns the profile plus a field-specific message on failure.
func (r recommendationRequest) validate() (profile, error) {
	g, ok := parseGender(r.Gender)
	if !ok {
		return profile{}, fmt.Errorf("gender must be M or F")
	}
	if !validAge(r.Age) {
		return profile{}, fmt.Errorf("age must be at least 14")
	}
	if !validHeight(r.HeightCM) {
		return profile{}, fmt.Errorf("height_cm must be positive")
	}
	if !validWeight(r.WeightKG) {
		return profile{}, fmt.Errorf("weight_kg must be positive")
	}
	if !validActivityLevel(r.ActivityLevel) {
		return profile{}, fmt.Errorf("activity_level must be between 1 and 4")
	}
	if !validGoal(r.Goal) {
		return profile{}, fmt.Errorf("goal must be 1 (lose), 2 (maintain) or 3 (gain)")
	}
	return profile{
		Gender:        g,
		Age:           r.Age,
		HeightCM:      r.HeightCM,
		WeightKG:      r.WeightKG,
		ActivityLevel: r.ActivityLevel,
		Goal:          r.Goal,
	}, nil
}

/* ─── Handlers ───────────────────────────────────────────────────────── */

// postRecommendation handles POST /api/recommendation: validate the six
// fields, run the intake pipeline, and return either the recommendation or
// the caution (with the numeric value left out of the body).
func (h *Handler) postRecommendation(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := req.validate()
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := recommendIntake(p)
	if err != nil {
		// Unreachable after validate; if it fires, the predicates and the
		// factor table have drifted apart.
		log.Printf("[recommendation] %s pipeline error: %v", c.GetString("request_id"), err)
		apiError(c, http.StatusInternalServerError, "recommendation failed")
		return
	}

	resp := recommendationResponse{
		Caution: rec.Caution,
		Message: resultMessage(p, rec),
	}
	if !rec.Caution {
		resp.Intake = &rec.Intake
	}
	c.JSON(http.StatusOK, resp)
}

// apiError returns a consistent JSON error response: {"error": "message"}.
func apiError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

/* ─── Server setup ───────────────────────────────────────────────────── */

// requestIDMiddleware tags every request with a uuid, echoed back in the
// X-Request-ID response header and available to handlers for log lines.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// registerRoutes registers all API routes on the router.
func (h *Handler) registerRoutes(router *gin.Engine) {
	api := router.Group("/api", requestIDMiddleware())
	api.POST("/recommendation", h.postRecommendation)
}
