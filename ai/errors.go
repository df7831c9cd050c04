package ai

import (
	"errors"
	"fmt"
)

var (
	// Transport-level failure reaching a provider.
	ErrProviderUnavailable = errors.New("provider unavailable")

	// Response envelope errors
	ErrMalformedEnvelope = errors.New("no message output in provider response")
	ErrEmptyContent      = errors.New("provider message has no text content")

	// Generation errors
	ErrGenerationEmpty         = errors.New("no text generated from provider response")
	ErrInvalidFlashcardPayload = errors.New("failed to parse generated flashcards")
	ErrVoiceNotFound           = errors.New("voice not found")
)

// ProviderError reports a non-success status from an external provider,
// carrying the status code and whatever detail the provider returned.
type ProviderError struct {
	Provider string
	Status   int
	Detail   string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s request failed with status %d: %s", e.Provider, e.Status, e.Detail)
}
