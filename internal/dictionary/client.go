package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/Adewale-tech/telex-dictionary-agent/internal/dictionary")

// Client is an interface for looking up word definitions.
type Client interface {
	// Lookup returns the entries for a word, or ErrNotFound / ErrUpstream.
	Lookup(ctx context.Context, word string) ([]Entry, error)
}

// HTTPClient is an HTTP implementation of the Client interface backed by the
// Free Dictionary API (https://dictionaryapi.dev).
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a new HTTPClient. The timeout bounds each lookup.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Lookup fetches the dictionary entries for a word. Words are lowercased
// before hitting the upstream, matching how the API indexes its entries.
func (c *HTTPClient) Lookup(ctx context.Context, word string) ([]Entry, error) {
	ctx, span := tracer.Start(ctx, "dictionary.Lookup")
	defer span.End()
	span.SetAttributes(attribute.String("dictionary.word", word))

	endpoint := c.baseURL + "/" + url.PathEscape(strings.ToLower(word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to reach dictionary API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, word)
	case resp.StatusCode != http.StatusOK:
		span.SetStatus(codes.Error, resp.Status)
		return nil, fmt.Errorf("%w: status code %d", ErrUpstream, resp.StatusCode)
	}

	// A 200 with an empty array is a valid answer: the word exists but has
	// no entries. The caller decides how to present it.
	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return entries, nil
}
