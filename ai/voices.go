package ai

import "fmt"

// DefaultVoice is the logical voice used when the caller does not name one.
const DefaultVoice = "burt"

// DefaultVoices maps logical voice names to ElevenLabs voice IDs. The map is
// injected through Config so deployments can swap voices without a rebuild.
func DefaultVoices() map[string]string {
	return map[string]string{
		"burt":   "4YYIPFl9wE5c4L2eu2Gb",
		"rachel": "21m00Tcm4TlvDq8ikWAM",
		"adam":   "pNInz6obpgDQGcFmaJgB",
	}
}

// resolveVoice maps a logical voice name to a provider voice ID. An unknown
// name is an explicit ErrVoiceNotFound, never a lookup panic.
func (c *Client) resolveVoice(name string) (string, error) {
	if name == "" {
		name = DefaultVoice
	}

	id, ok := c.voices[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrVoiceNotFound, name)
	}
	return id, nil
}
