// Package chatapi pushes bot replies into conversations through the chat
// platform's connector REST API.
package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// activity is the minimal outbound message shape accepted by the connector.
type activity struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// credentials is the JSON shape stored in SSM for the bot token.
type credentials struct {
	Token string `json:"token"`
}

// Getter reads a JSON parameter into v.
type Getter interface {
	GetJSON(ctx context.Context, name string, v any) error
}

// HTTPStatusError captures non-2xx connector responses.
type HTTPStatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("chatapi: unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPStatusError) HTTPStatusCode() int {
	return e.StatusCode
}

// Client posts activities to the connector. The bearer token is fetched from
// the parameter store on the first send and reused for the process lifetime.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	getter      Getter
	paramPrefix string

	tokenOnce sync.Once
	token     string
	tokenErr  error
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(getter Getter, baseURL, paramPrefix string, opts ...Option) (*Client, error) {
	if getter == nil {
		return nil, errors.New("chatapi: paramstore getter must not be nil")
	}
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("chatapi: base URL must not be empty")
	}
	paramPrefix = strings.TrimRight(strings.TrimSpace(paramPrefix), "/")
	if paramPrefix == "" {
		return nil, errors.New("chatapi: parameter prefix must not be empty")
	}
	c := &Client{
		baseURL:     baseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		getter:      getter,
		paramPrefix: paramPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) tokenParameterName() string {
	return c.paramPrefix + "/bot-token"
}

func (c *Client) resolveToken(ctx context.Context) (string, error) {
	c.tokenOnce.Do(func() {
		var creds credentials
		if err := c.getter.GetJSON(ctx, c.tokenParameterName(), &creds); err != nil {
			c.tokenErr = fmt.Errorf("chatapi: fetch bot token: %w", err)
			return
		}
		if creds.Token == "" {
			c.tokenErr = errors.New("chatapi: bot token is empty")
			return
		}
		c.token = creds.Token
	})
	return c.token, c.tokenErr
}

func (c *Client) resolvedHTTPClient() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func activitiesURL(baseURL, conversationID string) string {
	return strings.TrimRight(baseURL, "/") + "/v3/conversations/" + url.PathEscape(conversationID) + "/activities"
}

// SendReply posts text as a message activity into conversationID.
func (c *Client) SendReply(ctx context.Context, conversationID, text string) error {
	if strings.TrimSpace(conversationID) == "" {
		return errors.New("chatapi: conversation id must not be empty")
	}

	token, err := c.resolveToken(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(activity{Type: "message", Text: text})
	if err != nil {
		return fmt.Errorf("chatapi: marshal activity: %w", err)
	}

	endpoint := activitiesURL(c.baseURL, conversationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("chatapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.resolvedHTTPClient().Do(req)
	if err != nil {
		return fmt.Errorf("chatapi: request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return &HTTPStatusError{
			StatusCode: res.StatusCode,
			URL:        endpoint,
			Body:       string(buf),
		}
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 1<<20))
	return nil
}
