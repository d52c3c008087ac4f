package letta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// API is the contract consumed by the services. One operation per backend
// capability; each performs exactly one network call, no retries, no caching.
// Retry policy belongs to callers.
type API interface {
	ListSources(ctx context.Context) ([]Source, error)
	CreateSource(ctx context.Context, req CreateSourceRequest) (*Source, error)
	UploadFileToSource(ctx context.Context, sourceID, filename string, content []byte) error
	DeleteSource(ctx context.Context, sourceID string) error

	ListAgents(ctx context.Context) ([]Agent, error)
	CreateAgent(ctx context.Context, req CreateAgentRequest) (*Agent, error)
	ListAgentSources(ctx context.Context, agentID string) ([]Source, error)
	AttachSourceToAgent(ctx context.Context, agentID, sourceID string) error

	SendMessage(ctx context.Context, agentID string, req MessageRequest) ([]EventRecord, error)
}

// Client talks to the agent-management service over HTTP with bearer-token
// authentication and JSON payloads.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

var _ API = &Client{}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: baseURL,
		Token:   token,
		HTTP: &http.Client{
			// Message turns can take a while: the agent may run several
			// tool calls before answering.
			Timeout: 120 * time.Second,
		},
	}
}

// doJSON performs one request and decodes the 2xx response body into out
// (skipped when out is nil). Non-2xx responses become an *APIError carrying
// the status and the raw body.
func (c *Client) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var bodyReader io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{StatusCode: res.StatusCode, Body: string(resBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}
}

func (c *Client) ListSources(ctx context.Context) ([]Source, error) {
	var sources []Source
	if err := c.doJSON(ctx, http.MethodGet, "/v1/sources", nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

func (c *Client) CreateSource(ctx context.Context, req CreateSourceRequest) (*Source, error) {
	var source Source
	if err := c.doJSON(ctx, http.MethodPost, "/v1/sources", req, &source); err != nil {
		return nil, err
	}
	return &source, nil
}

// UploadFileToSource transfers the file bytes to an already created source
// as a multipart body.
func (c *Client) UploadFileToSource(ctx context.Context, sourceID, filename string, content []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	url := fmt.Sprintf("%s/v1/sources/%s/upload", c.BaseURL, sourceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{StatusCode: res.StatusCode, Body: string(resBody)}
	}
	return nil
}

// DeleteSource deletes a source. A 404 surfaces as an *APIError; callers
// treat it as success since the end state matches intent.
func (c *Client) DeleteSource(ctx context.Context, sourceID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/sources/"+sourceID, nil, nil)
}

func (c *Client) ListAgents(ctx context.Context) ([]Agent, error) {
	var agents []Agent
	if err := c.doJSON(ctx, http.MethodGet, "/v1/agents", nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

func (c *Client) CreateAgent(ctx context.Context, req CreateAgentRequest) (*Agent, error) {
	var agent Agent
	if err := c.doJSON(ctx, http.MethodPost, "/v1/agents", req, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

func (c *Client) ListAgentSources(ctx context.Context, agentID string) ([]Source, error) {
	var sources []Source
	if err := c.doJSON(ctx, http.MethodGet, "/v1/agents/"+agentID+"/sources", nil, &sources); err != nil {
		return nil, err
	}
	return sources, nil
}

// AttachSourceToAgent makes a source visible to the agent's retrieval tools.
// The backend treats attaching an already-attached source as a no-op.
func (c *Client) AttachSourceToAgent(ctx context.Context, agentID, sourceID string) error {
	path := fmt.Sprintf("/v1/agents/%s/sources/%s", agentID, sourceID)
	return c.doJSON(ctx, http.MethodPatch, path, nil, nil)
}

// messageResponse is the envelope of a message submission.
type messageResponse struct {
	Messages []EventRecord `json:"messages"`
}

// SendMessage submits one message turn and returns the full, unordered list
// of event records the backend emitted for it.
func (c *Client) SendMessage(ctx context.Context, agentID string, req MessageRequest) ([]EventRecord, error) {
	var res messageResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/agents/"+agentID+"/messages", req, &res); err != nil {
		return nil, err
	}
	return res.Messages, nil
}
