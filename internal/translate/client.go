package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sony/gobreaker"
	"google.golang.org/api/option"

	"github.com/oukeidos/lingua/internal/apperrors"
	"github.com/oukeidos/lingua/internal/httpclient"
	"github.com/oukeidos/lingua/internal/language"
)

// Service is the external translation capability. Implementations resolve the
// auto-detect sentinel into a concrete detected language code.
type Service interface {
	Translate(ctx context.Context, req Request) (*Result, error)
}

// Client translates text through the Gemini API.
type Client struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	breaker *gobreaker.CircuitBreaker
}

var _ Service = (*Client)(nil)

// NewClient creates a new Gemini-backed translation client.
// Note: we avoid option.WithHTTPClient because it interferes with the genai
// library's internal header injection for API keys; timeouts are enforced via
// context in Translate instead.
func NewClient(ctx context.Context, apiKey string, modelName string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	model := client.GenerativeModel(modelName)
	model.ResponseMIMEType = "application/json"

	return &Client{
		client:  client,
		model:   model,
		breaker: gobreaker.NewCircuitBreaker(breakerSettings()),
	}, nil
}

// breakerSettings trips the circuit after repeated retryable failures.
// Caller mistakes (bad request, auth, validation) are not counted: they will
// not heal by waiting, and they should not block an otherwise healthy service.
func breakerSettings() gobreaker.Settings {
	return gobreaker.Settings{
		Name:    "translate",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !apperrors.IsRetryable(err)
		},
	}
}

// Close closes the underlying genai client.
func (c *Client) Close() error {
	return c.client.Close()
}

func buildPrompt(req Request) string {
	targetName := language.Name(req.TargetLang)
	if language.IsAuto(req.SourceLang) {
		return fmt.Sprintf(`Detect the language of the following text and translate it into %s.
Respond ONLY with a JSON object of the form:
{"translated_text": "<the %s translation>", "detected_source_lang": "<ISO 639-1 code of the detected source language>"}

Text:
%s`, targetName, targetName, req.Text)
	}
	sourceName := language.Name(req.SourceLang)
	return fmt.Sprintf(`Translate the following %s text into %s.
Respond ONLY with a JSON object of the form:
{"translated_text": "<the %s translation>", "detected_source_lang": "%s"}

Text:
%s`, sourceName, targetName, targetName, req.SourceLang, req.Text)
}

// Translate sends a request to Gemini and returns the translated text plus the
// resolved source language code. Repeated upstream failures trip the circuit
// breaker, after which calls fail fast until the cooldown elapses.
func (c *Client) Translate(ctx context.Context, req Request) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, httpclient.DefaultTimeout)
	defer cancel()

	value, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.model.GenerateContent(ctx, genai.Text(buildPrompt(req)))
		if err != nil {
			return nil, classifyUpstreamError(err)
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, apperrors.New(apperrors.KindTransient,
				"Translation service temporarily unavailable after repeated failures. Please wait and retry.", err)
		}
		return nil, err
	}
	resp := value.(*genai.GenerateContentResponse)

	text, err := extractResponseText(resp)
	if err != nil {
		return nil, apperrors.Validation(err)
	}
	return parseResult(text, req)
}

func parseResult(text string, req Request) (*Result, error) {
	var payload responsePayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, apperrors.Validation(fmt.Errorf("failed to unmarshal response: %w", err))
	}
	if strings.TrimSpace(payload.TranslatedText) == "" {
		return nil, apperrors.Validation(fmt.Errorf("empty translation in response"))
	}

	detected := strings.TrimSpace(payload.DetectedSourceLang)
	if !language.IsAuto(req.SourceLang) {
		// Fixed-source requests always resolve to the requested code,
		// whatever the model echoed back.
		detected = req.SourceLang
	} else if detected == "" {
		return nil, apperrors.Validation(fmt.Errorf("missing detected source language in response"))
	}

	return &Result{
		TranslatedText:     payload.TranslatedText,
		DetectedSourceLang: detected,
	}, nil
}

func extractResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("no response received from translation service")
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from translation service")
	}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
			continue
		}
		var combined string
		for _, part := range candidate.Content.Parts {
			text, ok := part.(genai.Text)
			if !ok {
				continue
			}
			combined += string(text)
		}
		if combined != "" {
			return combined, nil
		}
	}
	return "", fmt.Errorf("no text parts found in response")
}
