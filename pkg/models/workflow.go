// Package models defines the models shared with the Telex platform.
package models

// Workflow is the importable Telex workflow configuration. The file produced
// from this model is what users paste into the Telex workflow settings to
// install the agent.
type Workflow struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	LongDescription string         `json:"long_description,omitempty"`
	Category        string         `json:"category"`
	Version         string         `json:"version"`
	Active          bool           `json:"active"`
	Nodes           []WorkflowNode `json:"nodes"`
}

// WorkflowNode is a single node in a Telex workflow. The dictionary agent
// installs a single A2A node pointing at the deployed webhook.
type WorkflowNode struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	URL      string       `json:"url"`
	Settings NodeSettings `json:"settings"`
}

// NodeSettings carries the A2A node's command routing and advertised
// capabilities.
type NodeSettings struct {
	Commands     []string `json:"commands"`
	Capabilities []string `json:"capabilities"`
	InputTypes   []string `json:"input_types"`
	OutputTypes  []string `json:"output_types"`
}

// NewDictionaryWorkflow builds the workflow configuration for a deployment
// reachable at baseURL. The webhook path is fixed: Telex sends every agent
// message to /a2a/message.
func NewDictionaryWorkflow(name, description, version, baseURL string) *Workflow {
	return &Workflow{
		ID:          "smartdict-bot",
		Name:        name,
		Description: description,
		LongDescription: "Dictionary agent for Telex. Ask it to define any English word " +
			"and it replies with definitions, usage examples, synonyms and parts of speech.",
		Category: "utilities",
		Version:  version,
		Active:   true,
		Nodes: []WorkflowNode{
			{
				ID:   "smartdict-a2a",
				Name: name + " A2A Node",
				Type: "a2a/generic-a2a-node",
				URL:  baseURL + "/a2a/message",
				Settings: NodeSettings{
					Commands:     []string{"define", "meaning", "help"},
					Capabilities: []string{"definitions", "examples", "synonyms", "part_of_speech"},
					InputTypes:   []string{"text/plain"},
					OutputTypes:  []string{"text/plain"},
				},
			},
		},
	}
}
