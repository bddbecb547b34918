package a2a

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Adewale-tech/telex-dictionary-agent/internal/agent"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/logging"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/repository"
)

// Handler processes A2A protocol messages from Telex and dispatches them to
// the dictionary agent.
type Handler struct {
	agent   *agent.Agent
	version string
	lookups repository.LookupStore
	logger  *logging.Logger
}

// NewHandler creates a new Handler.
func NewHandler(ag *agent.Agent, version string, lookups repository.LookupStore, logger *logging.Logger) *Handler {
	logger.Info("A2A handler initialized", "agent", ag.Name())
	return &Handler{agent: ag, version: version, lookups: lookups, logger: logger}
}

// Handle processes a single JSON-RPC request and returns the response.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	if req.JSONRPC != Version {
		return NewErrorResponse(req.ID, CodeInvalidRequest, "Invalid JSON-RPC version")
	}

	h.logger.Info("A2A request", "method", req.Method, "id", string(req.ID))

	switch req.Method {
	case "message":
		return h.handleMessage(ctx, req)
	case "ping":
		return NewSuccessResponse(req.ID, PingResult{Status: "ok", Agent: h.agent.Name()})
	case "info":
		return NewSuccessResponse(req.ID, h.Info())
	default:
		return NewErrorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}
}

// handleMessage processes a "message" request through the dictionary agent.
func (h *Handler) handleMessage(ctx context.Context, req Request) Response {
	text := strings.TrimSpace(req.Params.MessageText())
	if text == "" {
		return NewErrorResponse(req.ID, CodeInvalidParams, "No message content provided")
	}

	userID := identityFrom(req.Params.User)
	channelID := identityFrom(req.Params.Channel)

	h.logger.Info("message received", "user", userID, "channel", channelID, "length", len(text))

	reply := h.agent.Process(ctx, text)
	h.recordLookup(ctx, reply, userID, channelID)

	result := MessageResult{
		Type:     "message",
		Content:  reply.Text,
		Format:   "text",
		Message:  reply.Text,
		Text:     reply.Text,
		Response: reply.Text,
		Status:   "success",
		Agent:    h.agent.Name(),
	}

	return NewSuccessResponse(req.ID, result)
}

// recordLookup writes the lookup to the history store. Failures are logged
// and swallowed; history must never break message handling.
func (h *Handler) recordLookup(ctx context.Context, reply agent.Reply, userID, channelID string) {
	if reply.Word == "" {
		return
	}

	lookup := &repository.Lookup{
		ID:        uuid.New().String(),
		Word:      reply.Word,
		UserID:    userID,
		ChannelID: channelID,
		Outcome:   string(reply.Outcome),
		CreatedAt: time.Now().UTC(),
	}

	if err := h.lookups.Record(ctx, lookup); err != nil {
		h.logger.Error("failed to record lookup", "word", reply.Word, "error", err)
	}
}

// Info returns the agent's advertised capabilities.
func (h *Handler) Info() AgentInfo {
	return AgentInfo{
		Name:         h.agent.Name(),
		Version:      h.version,
		Capabilities: []string{"message", "definitions", "examples", "synonyms", "part_of_speech"},
		Commands:     []string{"define", "meaning", "help"},
		Status:       "online",
	}
}

// identityFrom extracts an identifier from a user or channel field, which
// may be an object with an "id" or a bare string.
func identityFrom(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "unknown"
	}

	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.ID != "" {
		return obj.ID
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}

	return "unknown"
}
