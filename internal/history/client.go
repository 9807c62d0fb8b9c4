package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

const DefaultResourceURL = "http://localhost:3001/api/logs/Yi1jLWQ"

// Fetcher is implemented by anything that can produce a LogResponse.
type Fetcher interface {
	Fetch(ctx context.Context) (*LogResponse, error)
}

type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
	log        logrus.FieldLogger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

func WithUserAgent(ua string) Option {
	return func(client *Client) {
		client.userAgent = ua
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(client *Client) {
		if log != nil {
			client.log = log
		}
	}
}

func NewClient(resourceURL string, opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		httpClient: http.DefaultClient,
		url:        resourceURL,
		userAgent:  "logview",
		log:        discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) URL() string {
	return c.url
}

// Fetch performs a single GET against the resource URL. There is no retry.
func (c *Client) Fetch(ctx context.Context) (*LogResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode, Err: ErrUnexpectedStatus}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}

	var data LogResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode, Err: fmt.Errorf("decoding body: %w", err)}
	}
	if data.History == nil {
		return nil, &FetchError{URL: c.url, StatusCode: resp.StatusCode, Err: ErrMissingHistory}
	}

	c.log.WithFields(logrus.Fields{
		"url":     c.url,
		"entries": len(data.History),
		"size":    humanize.Bytes(uint64(len(body))),
	}).Debug("fetched log history")

	return &data, nil
}
