// Package api contains the HTTP handlers for the dictionary agent service.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Adewale-tech/telex-dictionary-agent/internal/a2a"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/agent"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/logging"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/repository"
	"github.com/Adewale-tech/telex-dictionary-agent/pkg/models"
)

// Handler contains the HTTP handlers for the agent's public surface and the
// history REST API.
type Handler struct {
	a2aHandler *a2a.Handler
	agent      *agent.Agent
	lookups    repository.LookupStore
	manifest   *models.AgentManifest
	version    string
	logger     *logging.Logger
}

// NewHandler creates a new Handler with required dependencies.
func NewHandler(a2aHandler *a2a.Handler, ag *agent.Agent, lookups repository.LookupStore, manifest *models.AgentManifest, version string, logger *logging.Logger) *Handler {
	return &Handler{
		a2aHandler: a2aHandler,
		agent:      ag,
		lookups:    lookups,
		manifest:   manifest,
		version:    version,
		logger:     logger,
	}
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Agent     string    `json:"agent"`
	Version   string    `json:"version"`
}

// HandleRoot returns service status and an endpoint map.
// (GET /)
func (h *Handler) HandleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "online",
		"agent":    h.agent.Name(),
		"version":  h.version,
		"protocol": "A2A (Agent-to-Agent)",
		"manifest": "/.well-known/agent.json",
		"endpoints": map[string]string{
			"a2a_webhook": "/a2a/message",
			"health":      "/health",
			"info":        "/info",
			"mcp":         "/mcp",
		},
	})
}

// HandleHealth returns basic health status (always returns 200 OK).
// (GET /health)
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Agent:     h.agent.Name(),
		Version:   h.version,
	})
}

// HandleInfo returns the agent's advertised capabilities.
// (GET /info)
func (h *Handler) HandleInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, h.a2aHandler.Info())
}

// HandleManifest serves the agent card Telex uses for discovery.
// (GET /.well-known/agent.json)
func (h *Handler) HandleManifest(c echo.Context) error {
	return c.JSON(http.StatusOK, h.manifest)
}

// HandleA2AMessage is the main A2A protocol webhook. Telex sends JSON-RPC
// requests here.
// (POST /a2a/message)
func (h *Handler) HandleA2AMessage(c echo.Context) error {
	var req a2a.Request
	if err := c.Bind(&req); err != nil {
		h.logger.Error("webhook payload unreadable", "error", err)
		resp := a2a.NewErrorResponse(nil, a2a.CodeInternalError, "Internal server error: "+err.Error())
		return c.JSON(http.StatusInternalServerError, resp)
	}

	resp := h.a2aHandler.Handle(c.Request().Context(), req)
	return c.JSON(http.StatusOK, resp)
}

// TestRequest is the payload for the local test endpoint.
type TestRequest struct {
	Message string `json:"message"`
}

// TestResponse echoes the input alongside the agent's reply.
type TestResponse struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// HandleTest runs a message through the agent without the JSON-RPC
// envelope, for local testing.
// (POST /test)
func (h *Handler) HandleTest(c echo.Context) error {
	var req TestRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "Invalid request body", err.Error())
	}

	reply := h.agent.Process(c.Request().Context(), req.Message)
	return c.JSON(http.StatusOK, TestResponse{Input: req.Message, Output: reply.Text})
}

// HandleRecentLookups returns the most recent lookups.
// (GET /api/v1/lookups/recent)
func (h *Handler) HandleRecentLookups(c echo.Context) error {
	limit := intQueryParam(c, "limit", 20, 100)

	lookups, err := h.lookups.Recent(c.Request().Context(), limit)
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "Failed to list lookups", err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"lookups": lookups,
		"total":   len(lookups),
	})
}

// HandlePopularLookups returns the most looked-up words over a window of
// days (default 7).
// (GET /api/v1/lookups/popular)
func (h *Handler) HandlePopularLookups(c echo.Context) error {
	limit := intQueryParam(c, "limit", 10, 100)
	days := intQueryParam(c, "days", 7, 365)
	since := time.Now().AddDate(0, 0, -days)

	words, err := h.lookups.Popular(c.Request().Context(), limit, since)
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "Failed to list popular words", err.Error())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"words": words,
		"since": since,
		"total": len(words),
	})
}

// intQueryParam parses a positive integer query parameter with a default
// and an upper bound.
func intQueryParam(c echo.Context, name string, def, max int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}

// ProblemDetails represents an RFC 7807 Problem Details response.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
}

// writeError writes an RFC 7807 Problem Details JSON error response.
func writeError(c echo.Context, status int, title, detail string) error {
	problem := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
		Detail: detail,
	}
	// echo only sets Content-Type when it is still empty, so the problem+json
	// type survives c.JSON.
	c.Response().Header().Set(echo.HeaderContentType, "application/problem+json")
	return c.JSON(status, problem)
}
