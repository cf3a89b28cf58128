package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// API defines the TMDB operations used to build Game objects.
type API interface {
	Find(ctx context.Context, externalID, source string) (*FindResponse, error)
	PersonDetails(ctx context.Context, personID int64) (*PersonDetails, error)
	MovieDetails(ctx context.Context, movieID int64) (*MovieDetails, error)
	DiscoverMovies(ctx context.Context, page int) (*DiscoverResponse, error)
}

// StatusError reports a non-200 response from TMDB.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Latency    time.Duration
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb %s returned %d (latency=%v)", e.Endpoint, e.StatusCode, e.Latency)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == code
}

// Client provides access to the TMDB API.
type Client struct {
	token      string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout bounds every request. A zero duration leaves requests unbounded.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// New creates a TMDB client authenticated with a bearer token.
func New(token, baseURL, language string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("tmdb api token required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Find maps an external identifier to TMDB ids.
func (c *Client) Find(ctx context.Context, externalID, source string) (*FindResponse, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, errors.New("external id must not be empty")
	}
	if source == "" {
		source = ExternalSourceIMDb
	}
	params := url.Values{}
	params.Set("external_source", source)

	var payload FindResponse
	if err := c.get(ctx, "find", "/find/"+url.PathEscape(externalID), params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// PersonDetails fetches a person with movie credits appended.
func (c *Client) PersonDetails(ctx context.Context, personID int64) (*PersonDetails, error) {
	if personID <= 0 {
		return nil, errors.New("person id must be positive")
	}
	params := url.Values{}
	params.Set("append_to_response", "movie_credits")

	var payload PersonDetails
	if err := c.get(ctx, "person details", fmt.Sprintf("/person/%d", personID), params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieDetails fetches a movie with credits appended.
func (c *Client) MovieDetails(ctx context.Context, movieID int64) (*MovieDetails, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}
	params := url.Values{}
	params.Set("append_to_response", "credits")

	var payload MovieDetails
	if err := c.get(ctx, "movie details", fmt.Sprintf("/movie/%d", movieID), params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DiscoverMovies fetches one page of live-action movies ordered by vote count.
func (c *Client) DiscoverMovies(ctx context.Context, page int) (*DiscoverResponse, error) {
	if page <= 0 {
		return nil, errors.New("page must be positive")
	}
	params := url.Values{}
	params.Set("include_adult", "false")
	params.Set("include_video", "false")
	params.Set("page", strconv.Itoa(page))
	params.Set("sort_by", "vote_count.desc")
	// 16 is Animation.
	params.Set("without_genres", "16")

	var payload DiscoverResponse
	if err := c.get(ctx, "discover", "/discover/movie", params, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Authenticate verifies the token is accepted by TMDB.
func (c *Client) Authenticate(ctx context.Context) error {
	var payload struct {
		Success bool `json:"success"`
	}
	if err := c.get(ctx, "authentication", "/authentication", url.Values{}, &payload); err != nil {
		return err
	}
	if !payload.Success {
		return errors.New("tmdb authentication was not successful")
	}
	return nil
}

func (c *Client) get(ctx context.Context, endpointName, path string, params url.Values, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("parse tmdb url: %w", err)
	}
	if c.language != "" {
		params.Set("language", c.language)
	}
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute %s request (latency=%v): %w", endpointName, latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Endpoint: endpointName, StatusCode: resp.StatusCode, Latency: latency}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode tmdb %s response: %w", endpointName, err)
	}
	return nil
}
