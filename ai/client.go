// AI generation client for study artifacts: summaries and flashcards via the
// OpenAI responses API, speech audio via the ElevenLabs text-to-speech API.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
)

const (
	defaultOpenAIBaseURL     = "https://api.openai.com/v1"
	defaultElevenLabsBaseURL = "https://api.elevenlabs.io/v1"

	textModel   = "gpt-5"
	speechModel = "eleven_multilingual_v2"

	// ElevenLabs voice tuning
	voiceStability       = 0.5
	voiceSimilarityBoost = 0.5

	summarySystemPrompt = "You are an assistant specialized in creating study summaries. " +
		"Write a clear, concise and well structured summary of the provided content, " +
		"highlighting the main points and important concepts."

	flashcardSystemPrompt = "You are an assistant specialized in creating study flashcards. " +
		"Create question and answer flashcards based on the provided content. " +
		"Return a valid JSON array of objects containing \"question\" and \"answer\". " +
		"Create between 5 and 10 relevant flashcards."
)

// Generator produces AI study artifacts from note content.
type Generator interface {
	GenerateSummary(ctx context.Context, content string) (string, error)
	GenerateFlashcards(ctx context.Context, content string) ([]FlashcardData, error)
	GenerateAudio(ctx context.Context, text, voice string) (string, error)
}

// Config holds the provider credentials and the injected voice mapping.
type Config struct {
	OpenAIKey     string
	ElevenLabsKey string

	// Voices maps logical voice names to provider voice IDs. Defaults to
	// DefaultVoices when nil.
	Voices map[string]string

	// HTTPClient defaults to http.DefaultClient; tests inject their own.
	HTTPClient *http.Client

	// Base URL overrides, used by tests to point at a stub server.
	OpenAIBaseURL     string
	ElevenLabsBaseURL string
}

// Client calls the external providers. It performs no retries and sets no
// timeout beyond the HTTP client's own; cancellation comes from ctx.
type Client struct {
	http          *http.Client
	openAIKey     string
	elevenLabsKey string
	voices        map[string]string
	openAIBase    string
	elevenBase    string
}

var _ Generator = (*Client)(nil)

func NewClient(cfg Config) *Client {
	c := &Client{
		http:          cfg.HTTPClient,
		openAIKey:     cfg.OpenAIKey,
		elevenLabsKey: cfg.ElevenLabsKey,
		voices:        cfg.Voices,
		openAIBase:    cfg.OpenAIBaseURL,
		elevenBase:    cfg.ElevenLabsBaseURL,
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.voices == nil {
		c.voices = DefaultVoices()
	}
	if c.openAIBase == "" {
		c.openAIBase = defaultOpenAIBaseURL
	}
	if c.elevenBase == "" {
		c.elevenBase = defaultElevenLabsBaseURL
	}
	return c
}

type textRequest struct {
	Model string        `json:"model"`
	Input []textMessage `json:"input"`
}

type textMessage struct {
	Role    string        `json:"role"`
	Content []textContent `json:"content"`
}

type textContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type speechRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// GenerateSummary asks the text model for a study summary of the content.
func (c *Client) GenerateSummary(ctx context.Context, content string) (string, error) {
	userPrompt := fmt.Sprintf("Please summarize the following study content:\n\n%s", content)

	env, err := c.generateText(ctx, summarySystemPrompt, userPrompt)
	if err != nil {
		return "", err
	}

	summary, err := extractMessageText(env)
	if err != nil {
		return "", err
	}
	if summary == "" {
		return "", ErrGenerationEmpty
	}

	return summary, nil
}

// GenerateFlashcards asks the text model for question/answer pairs based on
// the content. Persisting the records is the caller's responsibility.
func (c *Client) GenerateFlashcards(ctx context.Context, content string) ([]FlashcardData, error) {
	userPrompt := fmt.Sprintf("Create study flashcards (questions and answers) based on the following content:\n\n%s"+
		"\n\nReturn only a valid JSON array in the format: [{\"question\": \"...\", \"answer\": \"...\"}]", content)

	env, err := c.generateText(ctx, flashcardSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	text, err := extractMessageText(env)
	if err != nil {
		return nil, err
	}

	return parseFlashcards(text)
}

// GenerateAudio synthesizes speech for the text using the named voice and
// returns the audio bytes base64 encoded.
func (c *Client) GenerateAudio(ctx context.Context, text, voice string) (string, error) {
	voiceID, err := c.resolveVoice(voice)
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(speechRequest{
		Text:    text,
		ModelID: speechModel,
		VoiceSettings: voiceSettings{
			Stability:       voiceStability,
			SimilarityBoost: voiceSimilarityBoost,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.elevenBase, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.elevenLabsKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("speech synthesis failed", "status", resp.StatusCode, "voice", voice)
		return "", &ProviderError{Provider: "elevenlabs", Status: resp.StatusCode, Detail: string(body)}
	}

	return base64.StdEncoding.EncodeToString(body), nil
}

// generateText posts a two-message request to the text-generation provider
// and decodes the response envelope.
func (c *Client) generateText(ctx context.Context, systemPrompt, userPrompt string) (*envelope, error) {
	payload, err := json.Marshal(textRequest{
		Model: textModel,
		Input: []textMessage{
			{
				Role:    "system",
				Content: []textContent{{Type: "input_text", Text: systemPrompt}},
			},
			{
				Role:    "user",
				Content: []textContent{{Type: "input_text", Text: userPrompt}},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.openAIBase+"/responses", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.openAIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("text generation failed", "status", resp.StatusCode)
		return nil, &ProviderError{Provider: "openai", Status: resp.StatusCode, Detail: string(body)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}

	return &env, nil
}
