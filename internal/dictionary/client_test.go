package dictionary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHTTPClient_Lookup(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		switch r.URL.Path {
		case "/ephemeral":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"word":"ephemeral","phonetic":"/ɪˈfɛm(ə)ɹəl/","meanings":[{"partOfSpeech":"adjective","definitions":[{"definition":"Lasting for a short period of time.","example":"ephemeral pleasures"}],"synonyms":["transient"]}]}]`))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"title":"No Definitions Found"}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer ts.Close()

	client := NewHTTPClient(ts.URL, 5*time.Second)

	t.Run("found", func(t *testing.T) {
		entries, err := client.Lookup(context.Background(), "Ephemeral")
		assert.NoError(t, err)
		assert.Equal(t, "/ephemeral", gotPath, "word should be lowercased")
		assert.Len(t, entries, 1)
		assert.Equal(t, "ephemeral", entries[0].Word)
		assert.Equal(t, "adjective", entries[0].Meanings[0].PartOfSpeech)
		assert.Equal(t, "ephemeral pleasures", entries[0].Meanings[0].Definitions[0].Example)
		assert.Equal(t, []string{"transient"}, entries[0].Meanings[0].Synonyms)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := client.Lookup(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("upstream error", func(t *testing.T) {
		_, err := client.Lookup(context.Background(), "broken")
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestHTTPClient_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	client := NewHTTPClient(ts.URL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Lookup(ctx, "slow")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestHTTPClient_EmptyBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	client := NewHTTPClient(ts.URL, 5*time.Second)
	entries, err := client.Lookup(context.Background(), "empty")
	assert.NoError(t, err, "an empty array is a valid answer, not an error")
	assert.Empty(t, entries)
}
