// Package deezer is a pass-through client for the Deezer catalog API.
// Responses are relayed to the caller byte-for-byte; there is no caching
// and no retry.
package deezer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"artistBooker/internal/config"
)

const (
	DefaultLimit = 15
	DefaultIndex = 0
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg config.Catalog) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) SearchArtists(ctx context.Context, query string, limit, index int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("index", strconv.Itoa(index))

	return c.get(ctx, "/search/artist", params)
}

func (c *Client) GetTrendingArtists(ctx context.Context, limit, index, genreID int) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("index", strconv.Itoa(index))

	return c.get(ctx, fmt.Sprintf("/chart/%d/artists", genreID), params)
}

func (c *Client) GetArtist(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, "/artist/"+url.PathEscape(id), nil)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	return body, nil
}
