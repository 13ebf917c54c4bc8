// Package azure binds ports.Translator to the Azure Translator v3 REST API.
//
// See https://docs.microsoft.com/en-us/azure/cognitive-services/translator/
// for the service contract. Endpoint, region and HTTP client are all
// injectable so the adapter can be pointed at a test server.
package azure

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"github.com/ku222/AdaptiveCardBuilder/internal/logging"
	"github.com/ku222/AdaptiveCardBuilder/pkg/ports"
)

const (
	// DefaultEndpoint is the global Azure Translator v3 endpoint, already
	// carrying the API version query.
	DefaultEndpoint = "https://api.cognitive.microsofttranslator.com/translate?api-version=3.0"
	// DefaultRegion is the subscription region header value used unless
	// overridden.
	DefaultRegion = "global"

	defaultTimeout = 30 * time.Second
)

// Client implements ports.Translator against the Azure Translator API.
type Client struct {
	endpoint   string
	key        string
	region     string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the service endpoint (including the api-version
// query).
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithRegion sets the Ocp-Apim-Subscription-Region header value.
func WithRegion(region string) Option {
	return func(c *Client) {
		c.region = region
	}
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a Client authenticated by the given subscription key.
func New(key string, opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		key:        key,
		region:     DefaultRegion,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// request and response mirror the service's wire shapes.
type requestItem struct {
	Text string `json:"Text"`
}

type responseItem struct {
	Translations []struct {
		Text string `json:"text"`
	} `json:"translations"`
}

// TranslateBatch posts one batch to the service and returns the translated
// texts in request order.
func (c *Client) TranslateBatch(ctx context.Context, texts []string, toLang string) ([]string, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if len(texts) > ports.MaxBatchSize {
		return nil, fmt.Errorf("batch of %d exceeds the service limit of %d", len(texts), ports.MaxBatchSize)
	}

	items := make([]requestItem, len(texts))
	for i, text := range texts {
		items[i] = requestItem{Text: text}
	}
	body, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	url := fmt.Sprintf("%s&to=%s", c.endpoint, toLang)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", c.key)
	req.Header.Set("Ocp-Apim-Subscription-Region", c.region)
	req.Header.Set("Content-Type", "application/json; charset=UTF-8")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("translator request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("translator returned status %d: %s", resp.StatusCode, detail)
	}

	var results []responseItem
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(results) != len(texts) {
		return nil, fmt.Errorf("translator returned %d results for %d texts", len(results), len(texts))
	}

	out := make([]string, len(results))
	for i, r := range results {
		if len(r.Translations) == 0 {
			return nil, fmt.Errorf("result %d carries no translations", i)
		}
		out[i] = r.Translations[0].Text
	}

	c.logger.Debug("translated batch", "lang", toLang, "texts", len(texts), "took", time.Since(start))
	return out, nil
}
