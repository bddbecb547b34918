// Package a2a implements the Agent-to-Agent (A2A) protocol layer spoken by
// Telex: JSON-RPC 2.0 over a single HTTP webhook.
package a2a

import "encoding/json"

// Version is the only JSON-RPC version the handler accepts.
const Version = "2.0"

// JSON-RPC 2.0 error codes.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// Request is an incoming JSON-RPC request from Telex.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  MessageParams   `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

// MessageParams carries the payload of a "message" request. Telex has sent
// the message content under several field names over time, so all of them
// are accepted. User and channel may be objects with an "id" field or bare
// strings.
type MessageParams struct {
	Message string          `json:"message,omitempty"`
	Text    string          `json:"text,omitempty"`
	Content string          `json:"content,omitempty"`
	Input   string          `json:"input,omitempty"`
	User    json.RawMessage `json:"user,omitempty"`
	Channel json.RawMessage `json:"channel,omitempty"`
}

// MessageText returns the first non-empty message field.
func (p MessageParams) MessageText() string {
	for _, s := range []string{p.Message, p.Text, p.Content, p.Input} {
		if s != "" {
			return s
		}
	}
	return ""
}

// Response is an outgoing JSON-RPC response.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

// Error is a JSON-RPC error object.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MessageResult is the result payload for a handled "message" request. The
// reply is duplicated under several field names because Telex clients have
// read different ones.
type MessageResult struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Format  string `json:"format"`

	Message  string `json:"message"`
	Text     string `json:"text"`
	Response string `json:"response"`

	Status string `json:"status"`
	Agent  string `json:"agent"`
}

// PingResult is the result payload for a "ping" request.
type PingResult struct {
	Status string `json:"status"`
	Agent  string `json:"agent"`
}

// AgentInfo describes the agent's capabilities, returned by the "info"
// method and the /info endpoint.
type AgentInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Capabilities []string `json:"capabilities"`
	Commands     []string `json:"commands"`
	Status       string   `json:"status"`
}

// NewSuccessResponse creates a JSON-RPC success response.
func NewSuccessResponse(id json.RawMessage, result interface{}) Response {
	return Response{JSONRPC: Version, Result: result, ID: id}
}

// NewErrorResponse creates a JSON-RPC error response.
func NewErrorResponse(id json.RawMessage, code int, message string) Response {
	return Response{JSONRPC: Version, Error: &Error{Code: code, Message: message}, ID: id}
}
