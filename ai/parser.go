package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// envelope mirrors the text-generation provider's response: a list of tagged
// output items, one of which carries the actual message.
type envelope struct {
	Output []outputItem `json:"output"`
}

type outputItem struct {
	Type    string         `json:"type"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// FlashcardData is one question/answer pair extracted from a model response.
type FlashcardData struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// extractMessageText locates the first "message" output item and returns the
// text of its first content block.
func extractMessageText(env *envelope) (string, error) {
	for _, item := range env.Output {
		if item.Type != "message" {
			continue
		}
		if len(item.Content) == 0 || item.Content[0].Text == "" {
			return "", ErrEmptyContent
		}
		return item.Content[0].Text, nil
	}
	return "", ErrMalformedEnvelope
}

// stripCodeFence removes the markdown fence the model often wraps JSON in,
// whether tagged (```json) or bare (```).
func stripCodeFence(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// parseFlashcards turns generated text into flashcard records. The prompt
// asks for 5-10 cards but that is a hint to the model, not a rule here: any
// non-empty list of complete records is accepted. Anything else is a hard
// ErrInvalidFlashcardPayload, never an empty default.
func parseFlashcards(text string) ([]FlashcardData, error) {
	cleaned := stripCodeFence(text)

	var cards []FlashcardData
	if err := json.Unmarshal([]byte(cleaned), &cards); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlashcardPayload, err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: model returned an empty list", ErrInvalidFlashcardPayload)
	}
	for i, card := range cards {
		if card.Question == "" || card.Answer == "" {
			return nil, fmt.Errorf("%w: record %d is missing a question or answer", ErrInvalidFlashcardPayload, i)
		}
	}

	return cards, nil
}
