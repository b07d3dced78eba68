package ytmusic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/reverbify/musicfn/internal/shared"
)

const (
	defaultBaseURL   = "https://music.youtube.com"
	apiPath          = "/youtubei/v1/"
	clientName       = "WEB_REMIX"
	clientVersion    = "1.20250120.01.00"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Browse page identifiers for the supported feeds.
const (
	browseHome             = "FEmusic_home"
	browseMixedForYou      = "FEmusic_mixed_for_you"
	browseLibraryPlaylists = "FEmusic_liked_playlists"
)

// Headers forwarded verbatim from the stored record when present.
var forwardedHeaders = []string{"user-agent", "x-goog-authuser", "x-origin", "accept-language"}

// Options configures a [Client].
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client issues authenticated requests to the YouTube Music web API.
type Client struct {
	baseURL    string
	headers    map[string]string
	cookie     string
	sapisid    string
	httpClient *http.Client
}

// NewClient constructs a [Client] bound to the given credential material.
//
// The cookie must carry a SAPISID value; everything else is optional. Returns
// [shared.ErrMalformedCredentials] when the structural minimum is missing.
// No network call is made during construction.
func NewClient(headers map[string]string, cookie string, opts Options) (*Client, error) {
	if cookie == "" {
		cookie = headers["cookie"]
	}
	if cookie == "" {
		return nil, fmt.Errorf("%w: missing cookie", shared.ErrMalformedCredentials)
	}

	sapisid := sapisidFromCookie(cookie)
	if sapisid == "" {
		return nil, fmt.Errorf("%w: cookie has no SAPISID value", shared.ErrMalformedCredentials)
	}

	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		headers:    headers,
		cookie:     cookie,
		sapisid:    sapisid,
		httpClient: httpClient,
	}, nil
}

// call issues one POST to an API endpoint with the innertube context body
// merged with params, and decodes the JSON response.
func (c *Client) call(ctx context.Context, endpoint string, params map[string]any) (map[string]any, error) {
	body := map[string]any{
		"context": map[string]any{
			"client": map[string]any{
				"clientName":    clientName,
				"clientVersion": clientVersion,
				"hl":            "en",
			},
			"user": map[string]any{},
		},
	}
	for k, v := range params {
		body[k] = v
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	apiURL := c.baseURL + apiPath + endpoint + "?alt=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("User-Agent", defaultUserAgent)
	for _, name := range forwardedHeaders {
		if v := c.headers[name]; v != "" {
			req.Header.Set(name, v)
		}
	}
	req.Header.Set("Cookie", c.cookie)
	req.Header.Set("Authorization", authHash(c.sapisid, c.baseURL, time.Now()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", shared.ErrUpstream, resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: status %d", shared.ErrUpstream, resp.StatusCode)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: undecodable response: %v", shared.ErrUpstream, err)
	}

	return result, nil
}

// TestConnection probes the account menu to verify the stored credentials
// are still accepted upstream.
func (c *Client) TestConnection(ctx context.Context) (bool, error) {
	if _, err := c.call(ctx, "account/account_menu", nil); err != nil {
		return false, err
	}
	return true, nil
}

// GetHome fetches the home feed as ordered sections.
func (c *Client) GetHome(ctx context.Context) ([]Section, error) {
	resp, err := c.call(ctx, "browse", map[string]any{"browseId": browseHome})
	if err != nil {
		return nil, err
	}
	return parseSections(resp), nil
}

// GetRecommendations fetches the personalized mixed-for-you feed, flattened
// into one ordered item list.
func (c *Client) GetRecommendations(ctx context.Context) ([]Item, error) {
	resp, err := c.call(ctx, "browse", map[string]any{"browseId": browseMixedForYou})
	if err != nil {
		return nil, err
	}

	var items []Item
	for _, section := range parseSections(resp) {
		items = append(items, section.Items...)
	}
	return items, nil
}

// GetLibraryPlaylists fetches the playlists saved in the user's library.
func (c *Client) GetLibraryPlaylists(ctx context.Context) ([]Playlist, error) {
	resp, err := c.call(ctx, "browse", map[string]any{"browseId": browseLibraryPlaylists})
	if err != nil {
		return nil, err
	}
	return parsePlaylists(resp), nil
}
