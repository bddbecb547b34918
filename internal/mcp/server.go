// Package mcp exposes the dictionary over the Model Context Protocol so MCP
// clients can use it as a tool alongside the Telex A2A surface.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Adewale-tech/telex-dictionary-agent/internal/agent"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/dictionary"
)

type Server struct {
	mcpServer *server.MCPServer
	dict      dictionary.Client
}

func NewServer(name, version string, dict dictionary.Client) *Server {
	s := &Server{
		mcpServer: server.NewMCPServer(
			name,
			version,
			server.WithToolCapabilities(true),
		),
		dict: dict,
	}

	s.registerTools()
	return s
}

func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool(
			"define_word",
			mcp.WithDescription("Look up the definition of an English word"),
			mcp.WithString("word", mcp.Required(), mcp.Description("The word to define")),
		),
		s.handleDefineWord,
	)

	s.mcpServer.AddTool(
		mcp.NewTool(
			"word_synonyms",
			mcp.WithDescription("List synonyms for an English word"),
			mcp.WithString("word", mcp.Required(), mcp.Description("The word to find synonyms for")),
		),
		s.handleWordSynonyms,
	)
}

func (s *Server) handleDefineWord(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	word, err := wordArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries, err := s.dict.Lookup(ctx, word)
	if err != nil {
		if errors.Is(err, dictionary.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("No dictionary entry for %q", word)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Lookup failed: %v", err)), nil
	}

	return mcp.NewToolResultText(agent.FormatEntries(word, entries)), nil
}

func (s *Server) handleWordSynonyms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	word, err := wordArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	entries, err := s.dict.Lookup(ctx, word)
	if err != nil {
		if errors.Is(err, dictionary.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("No dictionary entry for %q", word)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Lookup failed: %v", err)), nil
	}

	seen := make(map[string]bool)
	var synonyms []string
	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, syn := range meaning.Synonyms {
				if !seen[syn] {
					seen[syn] = true
					synonyms = append(synonyms, syn)
				}
			}
		}
	}

	if len(synonyms) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No synonyms found for %q", word)), nil
	}
	return mcp.NewToolResultText(strings.Join(synonyms, ", ")), nil
}

func wordArg(request mcp.CallToolRequest) (string, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", errors.New("Invalid arguments type")
	}

	word, ok := args["word"].(string)
	if !ok || strings.TrimSpace(word) == "" {
		return "", errors.New("Missing required parameter: word")
	}
	return strings.TrimSpace(word), nil
}

func MountHTTPHandlers(mux *http.ServeMux, mcpServer *server.MCPServer) {
	// Use SSE server for /mcp/sse and /mcp/message endpoints
	sseServer := server.NewSSEServer(mcpServer, server.WithStaticBasePath("/mcp"))

	mux.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		// Direct POST for tool calls
		if r.Method == http.MethodPost {
			sseServer.ServeHTTP(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// SSE endpoints
	mux.HandleFunc("/mcp/sse", sseServer.ServeHTTP)
	mux.HandleFunc("/mcp/message", sseServer.ServeHTTP)
}
