// Package agent implements the dictionary agent's message handling.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Adewale-tech/telex-dictionary-agent/internal/dictionary"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/logging"
)

// Outcome classifies how a message was handled.
type Outcome string

const (
	OutcomeFound    Outcome = "found"
	OutcomeNotFound Outcome = "not_found"
	OutcomeError    Outcome = "error"
	OutcomeHelp     Outcome = "help"
	OutcomeGreeting Outcome = "greeting"
	OutcomePrompt   Outcome = "prompt"
)

// Reply is the agent's answer to a single message.
type Reply struct {
	Text    string
	Word    string
	Outcome Outcome
}

// wordPrefixes are command prefixes stripped before extracting the word.
// Order matters: longer prefixes must come before their shorter variants.
var wordPrefixes = []string{
	"definition of ", "meaning of ",
	"define: ", "meaning: ",
	"define ", "meaning ",
	"what is ", "whats ",
}

var greetings = map[string]bool{
	"hello":     true,
	"hi":        true,
	"hey":       true,
	"greetings": true,
}

var helpTriggers = map[string]bool{
	"help":       true,
	"/help":      true,
	"how to use": true,
}

// Agent answers dictionary questions using an upstream lookup client.
type Agent struct {
	name   string
	dict   dictionary.Client
	logger *logging.Logger
}

// New creates a new Agent.
func New(name string, dict dictionary.Client, logger *logging.Logger) *Agent {
	return &Agent{name: name, dict: dict, logger: logger}
}

// Name returns the agent's display name.
func (a *Agent) Name() string { return a.name }

// Process handles an incoming message and produces a reply. It never returns
// an error; lookup failures become user-facing replies.
func (a *Agent) Process(ctx context.Context, message string) Reply {
	message = strings.TrimSpace(message)
	lower := strings.ToLower(message)

	if helpTriggers[lower] {
		return Reply{Text: a.HelpText(), Outcome: OutcomeHelp}
	}

	if greetings[lower] {
		text := fmt.Sprintf("👋 Hello! I'm %s. Send me any word or type 'help' to learn how to use me!", a.name)
		return Reply{Text: text, Outcome: OutcomeGreeting}
	}

	word := extractWord(message)
	if word == "" {
		return Reply{
			Text:    "❓ Please provide a word to look up. Type 'help' for usage instructions.",
			Outcome: OutcomePrompt,
		}
	}

	return a.lookup(ctx, word)
}

// extractWord pulls the word to look up out of a message. A known command
// prefix is stripped first; otherwise the first token is the word.
func extractWord(message string) string {
	lower := strings.ToLower(message)

	for _, prefix := range wordPrefixes {
		if strings.HasPrefix(lower, prefix) {
			rest := strings.TrimSpace(message[len(prefix):])
			fields := strings.Fields(rest)
			if len(fields) == 0 {
				return ""
			}
			return fields[0]
		}
	}

	fields := strings.Fields(message)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// lookup queries the dictionary and formats the result, mapping lookup
// failures to friendly replies.
func (a *Agent) lookup(ctx context.Context, word string) Reply {
	a.logger.Info("looking up word", "word", word)

	entries, err := a.dict.Lookup(ctx, word)
	if err != nil {
		switch {
		case errors.Is(err, dictionary.ErrNotFound):
			return Reply{
				Text:    fmt.Sprintf("❌ Sorry, I couldn't find '%s' in my dictionary. Please check the spelling.", word),
				Word:    word,
				Outcome: OutcomeNotFound,
			}
		case errors.Is(err, context.DeadlineExceeded):
			return Reply{
				Text:    fmt.Sprintf("⏱️ Request timed out while looking up '%s'. Please try again.", word),
				Word:    word,
				Outcome: OutcomeError,
			}
		case errors.Is(err, dictionary.ErrUpstream):
			return Reply{
				Text:    fmt.Sprintf("⚠️ I had trouble looking up '%s'. Please try again later.", word),
				Word:    word,
				Outcome: OutcomeError,
			}
		default:
			a.logger.Error("lookup failed", "word", word, "error", err)
			return Reply{
				Text:    "❌ An unexpected error occurred. Please try again.",
				Word:    word,
				Outcome: OutcomeError,
			}
		}
	}

	outcome := OutcomeFound
	if len(entries) == 0 {
		outcome = OutcomeNotFound
	}

	return Reply{
		Text:    FormatEntries(word, entries),
		Word:    word,
		Outcome: outcome,
	}
}

// FormatEntries renders dictionary entries as a chat reply: the word and its
// phonetic, up to three meanings with their first definition and example,
// and up to five synonyms from the first meaning.
func FormatEntries(word string, entries []dictionary.Entry) string {
	if len(entries) == 0 {
		return fmt.Sprintf("❌ No definition found for '%s'.", word)
	}

	entry := entries[0]
	if len(entry.Meanings) == 0 {
		return fmt.Sprintf("❌ No meanings found for '%s'.", word)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📖 **%s**", strings.ToUpper(word))
	if entry.Phonetic != "" {
		fmt.Fprintf(&b, " _%s_", entry.Phonetic)
	}
	b.WriteString("\n\n")

	count := 0
	limit := len(entry.Meanings)
	if limit > 3 {
		limit = 3
	}
	for _, meaning := range entry.Meanings[:limit] {
		if len(meaning.Definitions) == 0 {
			continue
		}
		def := meaning.Definitions[0]

		partOfSpeech := meaning.PartOfSpeech
		if partOfSpeech == "" {
			partOfSpeech = "unknown"
		}

		count++
		fmt.Fprintf(&b, "**%d. (%s)**\n", count, partOfSpeech)
		fmt.Fprintf(&b, "   %s\n", def.Definition)
		if def.Example != "" {
			fmt.Fprintf(&b, "   💡 Example: _%s_\n", def.Example)
		}
		b.WriteString("\n")
	}

	if synonyms := entry.Meanings[0].Synonyms; len(synonyms) > 0 {
		if len(synonyms) > 5 {
			synonyms = synonyms[:5]
		}
		fmt.Fprintf(&b, "🔄 Similar words: %s\n", strings.Join(synonyms, ", "))
	}

	return strings.TrimSpace(b.String())
}

// HelpText returns the usage message shown for the help command.
func (a *Agent) HelpText() string {
	return fmt.Sprintf(`📖 **%s - How to Use**

I can help you look up word definitions! Here's how:

- `+"`define [word]`"+` - Get full definition
- `+"`meaning [word]`"+` - Get meaning
- `+"`[word]`"+` - Just type any word
- `+"`help`"+` - Show this message

Examples:
- define ephemeral
- meaning serendipity
- eloquent`, a.name)
}
