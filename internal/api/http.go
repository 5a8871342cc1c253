package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// defaultTimeout bounds a single backend call. Generation endpoints do
// real work server-side, so this is generous.
const defaultTimeout = 2 * time.Minute

// Client is the HTTP implementation of Backend, talking JSON to a hosted
// tutor service.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     *zap.Logger
}

var _ Backend = (*Client)(nil)

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.httpc = h }
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) ClientOption {
	return func(c *Client) { c.token = token }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log *zap.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) GenerateRoadmap(ctx context.Context, req RoadmapRequest) (*Roadmap, error) {
	var out struct {
		Roadmap Roadmap `json:"roadmap"`
	}
	if err := c.post(ctx, "/api/v1/roadmaps", req, &out); err != nil {
		return nil, err
	}
	return &out.Roadmap, nil
}

func (c *Client) CheckSimilar(ctx context.Context, prompt string, level ExperienceLevel) ([]SimilarCourse, error) {
	in := struct {
		Prompt string          `json:"prompt"`
		Level  ExperienceLevel `json:"level"`
	}{prompt, level}
	var out struct {
		SimilarItems []SimilarCourse `json:"similar_items"`
	}
	if err := c.post(ctx, "/api/v1/courses/similar", in, &out); err != nil {
		return nil, err
	}
	return out.SimilarItems, nil
}

func (c *Client) GeneratePreview(ctx context.Context, req PreviewRequest) (*CoursePreview, error) {
	var out CoursePreview
	if err := c.post(ctx, "/api/v1/courses/preview", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GenerateFull(ctx context.Context, req GenerateRequest) (*Course, error) {
	var out Course
	if err := c.post(ctx, "/api/v1/courses", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Publish(ctx context.Context, courseID string) error {
	return c.post(ctx, "/api/v1/courses/"+url.PathEscape(courseID)+"/publish", nil, nil)
}

func (c *Client) Enroll(ctx context.Context, courseID string) error {
	return c.post(ctx, "/api/v1/courses/"+url.PathEscape(courseID)+"/enroll", nil, nil)
}

func (c *Client) GetDueCards(ctx context.Context, deck string, limit int) ([]Card, error) {
	q := url.Values{}
	if deck != "" {
		q.Set("deck", deck)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/v1/cards/due"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out struct {
		Cards []Card `json:"cards"`
		Count int    `json:"count"`
	}
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Cards, nil
}

func (c *Client) ReviewCard(ctx context.Context, sub ReviewSubmission) error {
	return c.post(ctx, "/api/v1/cards/"+url.PathEscape(sub.CardID)+"/review", sub, nil)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	return c.do(ctx, http.MethodPost, path, in, out)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return NewError(KindUnknown, "encode request", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return NewError(KindUnknown, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		// Context cancellation surfaces here too; keep the cause wrapped
		// so errors.Is(err, context.Canceled) still works.
		return NewError(KindNetwork, "cannot reach the tutor service", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug("backend call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewError(KindServer, "malformed response from the tutor service", err)
	}
	return nil
}

// statusError maps a non-2xx response to a typed error, preserving the
// server's message when one is present.
func (c *Client) statusError(resp *http.Response) error {
	msg := serverMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		if msg == "" {
			msg = "not found"
		}
		return NewError(KindNotFound, msg, nil)
	case resp.StatusCode >= 500:
		if msg == "" {
			msg = fmt.Sprintf("the tutor service failed (HTTP %d)", resp.StatusCode)
		}
		return NewError(KindServer, msg, nil)
	default:
		if msg == "" {
			msg = fmt.Sprintf("request rejected (HTTP %d)", resp.StatusCode)
		}
		return NewError(KindValidation, msg, nil)
	}
}

// serverMessage extracts the "error" field from a JSON error body, if any.
func serverMessage(body io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Error)
}
