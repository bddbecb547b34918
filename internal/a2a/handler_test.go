package a2a

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Adewale-tech/telex-dictionary-agent/internal/agent"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/dictionary"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/logging"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/repository"
)

// MockDictionary satisfies dictionary.Client
type MockDictionary struct {
	mock.Mock
}

func (m *MockDictionary) Lookup(ctx context.Context, word string) ([]dictionary.Entry, error) {
	args := m.Called(ctx, word)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dictionary.Entry), args.Error(1)
}

// recordingStore captures recorded lookups.
type recordingStore struct {
	recorded []*repository.Lookup
}

func (s *recordingStore) Record(ctx context.Context, lookup *repository.Lookup) error {
	s.recorded = append(s.recorded, lookup)
	return nil
}

func (s *recordingStore) Recent(ctx context.Context, limit int) ([]*repository.Lookup, error) {
	return s.recorded, nil
}

func (s *recordingStore) Popular(ctx context.Context, limit int, since time.Time) ([]*repository.WordCount, error) {
	return nil, nil
}

func (s *recordingStore) Ping(ctx context.Context) error { return nil }

func newTestHandler(dict dictionary.Client, lookups repository.LookupStore) *Handler {
	logger := logging.NewLogger("error")
	ag := agent.New("SmartDict Bot", dict, logger)
	return NewHandler(ag, "1.0.0", lookups, logger)
}

func TestHandle_InvalidVersion(t *testing.T) {
	h := newTestHandler(new(MockDictionary), repository.NewNoopLookupStore())

	resp := h.Handle(context.Background(), Request{JSONRPC: "1.0", Method: "message", ID: json.RawMessage(`"1"`)})

	assert.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidRequest, resp.Error.Code)
	assert.Equal(t, Version, resp.JSONRPC)
	assert.Equal(t, json.RawMessage(`"1"`), resp.ID)
}

func TestHandle_MethodNotFound(t *testing.T) {
	h := newTestHandler(new(MockDictionary), repository.NewNoopLookupStore())

	resp := h.Handle(context.Background(), Request{JSONRPC: Version, Method: "bogus"})

	assert.NotNil(t, resp.Error)
	assert.Equal(t, CodeMethodNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "bogus")
}

func TestHandle_Ping(t *testing.T) {
	h := newTestHandler(new(MockDictionary), repository.NewNoopLookupStore())

	resp := h.Handle(context.Background(), Request{JSONRPC: Version, Method: "ping", ID: json.RawMessage(`42`)})

	assert.Nil(t, resp.Error)
	result, ok := resp.Result.(PingResult)
	assert.True(t, ok)
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "SmartDict Bot", result.Agent)
}

func TestHandle_Info(t *testing.T) {
	h := newTestHandler(new(MockDictionary), repository.NewNoopLookupStore())

	resp := h.Handle(context.Background(), Request{JSONRPC: Version, Method: "info"})

	assert.Nil(t, resp.Error)
	info, ok := resp.Result.(AgentInfo)
	assert.True(t, ok)
	assert.Equal(t, "SmartDict Bot", info.Name)
	assert.Equal(t, []string{"define", "meaning", "help"}, info.Commands)
	assert.Contains(t, info.Capabilities, "synonyms")
	assert.Equal(t, "online", info.Status)
}

func TestHandle_Message_Empty(t *testing.T) {
	h := newTestHandler(new(MockDictionary), repository.NewNoopLookupStore())

	resp := h.Handle(context.Background(), Request{JSONRPC: Version, Method: "message"})

	assert.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidParams, resp.Error.Code)
}

func TestHandle_Message_WhitespaceOnly(t *testing.T) {
	h := newTestHandler(new(MockDictionary), repository.NewNoopLookupStore())

	resp := h.Handle(context.Background(), Request{
		JSONRPC: Version,
		Method:  "message",
		Params:  MessageParams{Message: "   "},
		ID:      json.RawMessage(`"ws-1"`),
	})

	assert.NotNil(t, resp.Error)
	assert.Equal(t, CodeInvalidParams, resp.Error.Code)
	assert.Equal(t, "No message content provided", resp.Error.Message)
}

func TestHandle_Message_Lookup(t *testing.T) {
	dict := new(MockDictionary)
	dict.On("Lookup", mock.Anything, "ephemeral").Return([]dictionary.Entry{
		{
			Word: "ephemeral",
			Meanings: []dictionary.Meaning{
				{PartOfSpeech: "adjective", Definitions: []dictionary.Definition{{Definition: "Short-lived."}}},
			},
		},
	}, nil)

	store := &recordingStore{}
	h := newTestHandler(dict, store)

	req := Request{
		JSONRPC: Version,
		Method:  "message",
		Params: MessageParams{
			Message: "define ephemeral",
			User:    json.RawMessage(`{"id":"user-1"}`),
			Channel: json.RawMessage(`"general"`),
		},
		ID: json.RawMessage(`"req-1"`),
	}

	resp := h.Handle(context.Background(), req)

	assert.Nil(t, resp.Error)
	result, ok := resp.Result.(MessageResult)
	assert.True(t, ok)
	assert.Equal(t, "message", result.Type)
	assert.Equal(t, "text", result.Format)
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "SmartDict Bot", result.Agent)
	assert.Contains(t, result.Content, "EPHEMERAL")
	// Reply is duplicated across the compatibility fields.
	assert.Equal(t, result.Content, result.Message)
	assert.Equal(t, result.Content, result.Text)
	assert.Equal(t, result.Content, result.Response)

	// The lookup is recorded with the caller's identity.
	assert.Len(t, store.recorded, 1)
	assert.Equal(t, "ephemeral", store.recorded[0].Word)
	assert.Equal(t, "user-1", store.recorded[0].UserID)
	assert.Equal(t, "general", store.recorded[0].ChannelID)
	assert.Equal(t, "found", store.recorded[0].Outcome)
	assert.NotEmpty(t, store.recorded[0].ID)
}

func TestHandle_Message_AlternateFields(t *testing.T) {
	dict := new(MockDictionary)
	h := newTestHandler(dict, repository.NewNoopLookupStore())

	resp := h.Handle(context.Background(), Request{
		JSONRPC: Version,
		Method:  "message",
		Params:  MessageParams{Input: "help"},
	})

	assert.Nil(t, resp.Error)
	result := resp.Result.(MessageResult)
	assert.Contains(t, result.Content, "How to Use")
}

func TestHandle_Message_HelpNotRecorded(t *testing.T) {
	store := &recordingStore{}
	h := newTestHandler(new(MockDictionary), store)

	resp := h.Handle(context.Background(), Request{
		JSONRPC: Version,
		Method:  "message",
		Params:  MessageParams{Text: "help"},
	})

	assert.Nil(t, resp.Error)
	assert.Empty(t, store.recorded, "help has no word to record")
}

func TestIdentityFrom(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"id":"u-1"}`, "u-1"},
		{`"plain"`, "plain"},
		{`{"name":"no id"}`, "unknown"},
		{``, "unknown"},
		{`123`, "unknown"},
	}

	for _, tt := range tests {
		var raw json.RawMessage
		if tt.raw != "" {
			raw = json.RawMessage(tt.raw)
		}
		assert.Equal(t, tt.want, identityFrom(raw), "raw %q", tt.raw)
	}
}

func TestMessageParams_MessageText(t *testing.T) {
	assert.Equal(t, "a", MessageParams{Message: "a", Text: "b"}.MessageText())
	assert.Equal(t, "b", MessageParams{Text: "b", Content: "c"}.MessageText())
	assert.Equal(t, "c", MessageParams{Content: "c", Input: "d"}.MessageText())
	assert.Equal(t, "d", MessageParams{Input: "d"}.MessageText())
	assert.Equal(t, "", MessageParams{}.MessageText())
}
