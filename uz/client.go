package uz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"io"
	"net/http"
	"time"
	"uz-departures/model"
)

const (
	DefaultBaseURL = "https://app.uz.gov.ua/api/station-boards"
	DefaultTimeout = 10 * time.Second

	userAgent       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	clientUserAgent = "UZ/2 Web/1 User/guest"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrDecode           = errors.New("could not decode station board")
)

// BoardFetcher is anything that can fetch a raw station board.
type BoardFetcher interface {
	GetBoard(ctx context.Context, stationID string) (*model.RawBoard, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	newSession func() string
}

type Option func(*Client)

// WithBaseURL points the client at another station-boards endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout replaces the 10 second request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		newSession: uuid.NewString,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Headers builds the header set for one request. The sessionID must be
// freshly generated for every call.
func Headers(sessionID string) http.Header {
	h := http.Header{}
	h.Set("Authority", "app.uz.gov.ua")
	h.Set("Accept", "application/json")
	h.Set("User-Agent", userAgent)
	// force English, the display has no Cyrillic glyphs
	h.Set("X-Client-Locale", "en")
	h.Set("X-Session-Id", sessionID)
	h.Set("X-User-Agent", clientUserAgent)
	return h
}

// GetBoard makes exactly one request for the station board of stationID.
func (c *Client) GetBoard(ctx context.Context, stationID string) (*model.RawBoard, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, stationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request for station %s: %w", stationID, err)
	}
	req.Header = Headers(c.newSession())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch station board for %s: %w", stationID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d from %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read station board for %s: %w", stationID, err)
	}

	var board model.RawBoard
	if err := json.Unmarshal(body, &board); err != nil {
		return nil, fmt.Errorf("%w for %s: %v", ErrDecode, stationID, err)
	}

	return &board, nil
}
