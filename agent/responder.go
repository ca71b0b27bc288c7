package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/adamspd/InterviewCoach/utils"
)

// ListeningSentinel is the literal token the model replies with when it has
// nothing useful to add. Only the silence-driven policy asks for it.
const ListeningSentinel = "LISTENING"

// Turn is one prior exchange forwarded to the responder for context.
type Turn struct {
	Role    string
	Content string
}

// Request carries the read-only snapshot the response generator works from.
// Consumers never mutate session state through it.
type Request struct {
	ProblemTitle       string
	ProblemDescription string
	CurrentStage       string
	StageSummary       string
	UserFocus          string
	ConfidenceLevel    float64
	HintsGiven         int
	QuestionsAsked     int
	ElapsedSeconds     float64
	Utterance          string
	RecentTurns        []Turn
	AllowSilent        bool
}

// Responder produces the interviewer's spoken text. Implementations are
// expected to suspend (network/model latency); callers hold the session's
// serialization point for the duration of the call.
type Responder interface {
	Respond(ctx context.Context, req *Request) (string, error)
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	httpClient  *http.Client
}

func NewClientFromEnv() *Client {
	return &Client{
		apiKey:      utils.GetEnvOrDefault("OPENAI_API_KEY", ""),
		baseURL:     utils.GetEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		model:       utils.GetEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		temperature: 0.7,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *Client) Respond(ctx context.Context, req *Request) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	messages := []chatMessage{{Role: "system", Content: BuildSystemPrompt(req)}}
	for _, turn := range req.RecentTurns {
		role := "user"
		if turn.Role == "assistant" {
			role = "assistant"
		}
		messages = append(messages, chatMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: BuildTurnPrompt(req)})

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("chat endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat endpoint returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
