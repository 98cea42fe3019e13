package gemini

import (
	"encoding/json"
	"fmt"

	"marketlens-backend/domain"
)

// ExtractText unwraps a raw Gemini envelope down to the generated text at
// candidates[0].content.parts[0].text. Pure; no side effects.
//
// A first part without a text field yields an empty string rather than an
// error: the receipt parser will reject it with a far more useful message.
func ExtractText(raw []byte) (string, error) {
	var envelope struct {
		Error      json.RawMessage `json:"error"`
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", fmt.Errorf("decoding gemini envelope: %w", err)
	}

	if len(envelope.Error) > 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrGeminiUpstream, string(envelope.Error))
	}

	if len(envelope.Candidates) == 0 {
		return "", domain.ErrNoCandidates
	}

	parts := envelope.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", domain.ErrEmptyContent
	}

	return parts[0].Text, nil
}
