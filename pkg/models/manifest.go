package models

// AgentManifest is the agent card served at /.well-known/agent.json. Telex
// reads it to discover the agent and its webhook.
type AgentManifest struct {
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Version      string         `json:"version"`
	URL          string         `json:"url"`
	Protocol     string         `json:"protocol"`
	Capabilities []string       `json:"capabilities"`
	Commands     []string       `json:"commands"`
	InputTypes   []string       `json:"input_types"`
	OutputTypes  []string       `json:"output_types"`
	Endpoints    AgentEndpoints `json:"endpoints"`
}

// AgentEndpoints lists the URLs Telex interacts with.
type AgentEndpoints struct {
	Message string `json:"message"`
	Health  string `json:"health"`
	Info    string `json:"info"`
}

// NewDictionaryManifest builds the agent card for a deployment reachable at
// baseURL.
func NewDictionaryManifest(name, description, version, baseURL string) *AgentManifest {
	return &AgentManifest{
		Name:         name,
		Description:  description,
		Version:      version,
		URL:          baseURL,
		Protocol:     "A2A (Agent-to-Agent)",
		Capabilities: []string{"definitions", "examples", "synonyms", "part_of_speech"},
		Commands:     []string{"define", "meaning", "help"},
		InputTypes:   []string{"text/plain"},
		OutputTypes:  []string{"text/plain"},
		Endpoints: AgentEndpoints{
			Message: baseURL + "/a2a/message",
			Health:  baseURL + "/health",
			Info:    baseURL + "/info",
		},
	}
}
