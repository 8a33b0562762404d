package bedrock

import (
	"encoding/json"
	"fmt"
)

const (
	// AnthropicVersion is the protocol tag Bedrock requires for Claude models.
	AnthropicVersion = "bedrock-2023-05-31"

	// DefaultMaxTokens bounds the model output per invocation.
	DefaultMaxTokens = 1000
)

// ContentBlock is a single typed block in a message.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Message is one conversational turn in the request envelope.
type Message struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// InvokeRequest is the Bedrock request envelope for Claude models.
type InvokeRequest struct {
	AnthropicVersion string    `json:"anthropic_version"`
	MaxTokens        int       `json:"max_tokens"`
	Messages         []Message `json:"messages"`
}

// NewRecipeRequest builds the full invoke envelope for a list of ingredients.
// Same input always yields the same envelope.
func NewRecipeRequest(ingredients []string) InvokeRequest {
	prompt := WrapConversation(BuildPrompt(ingredients))
	return InvokeRequest{
		AnthropicVersion: AnthropicVersion,
		MaxTokens:        DefaultMaxTokens,
		Messages: []Message{
			{
				Role: "user",
				Content: []ContentBlock{
					{Type: "text", Text: prompt},
				},
			},
		},
	}
}

// Body serializes the envelope for the wire.
func (r InvokeRequest) Body() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal invoke request: %w", err)
	}
	return data, nil
}

// InvokePath returns the resource path for a model's invoke action.
func InvokePath(modelID string) string {
	return "/model/" + modelID + "/invoke"
}
