package bedrock

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptyContent is returned when the model response carries no content blocks.
var ErrEmptyContent = errors.New("model response contained no content")

// InvokeResponse is the subset of the Bedrock response body this service reads.
type InvokeResponse struct {
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

// ParseResponse extracts the first text block from a raw response body.
// Malformed JSON and missing or empty content are reported as errors rather
// than returning a garbage value.
func ParseResponse(body []byte) (string, error) {
	var resp InvokeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode model response: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", ErrEmptyContent
	}

	return resp.Content[0].Text, nil
}
