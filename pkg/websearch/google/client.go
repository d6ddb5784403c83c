package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"scholarship-info-be/pkg/websearch"
)

const endpoint = "https://www.googleapis.com/customsearch/v1"

// Client queries the Google Programmable Search JSON API.
type Client struct {
	apiKey     string
	engineId   string
	maxResults int
	httpClient *http.Client
}

var _ websearch.Provider = &Client{}

func NewClient(apiKey, engineId string) *Client {
	return &Client{
		apiKey:     apiKey,
		engineId:   engineId,
		maxResults: 10,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Search(ctx context.Context, query string) ([]websearch.Result, error) {
	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("cx", c.engineId)
	params.Add("q", query)
	params.Add("num", strconv.Itoa(c.maxResults))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Items []struct {
			Title   string `json:"title"`
			Link    string `json:"link"`
			Snippet string `json:"snippet"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	results := make([]websearch.Result, 0, len(result.Items))
	for _, item := range result.Items {
		results = append(results, websearch.Result{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Snippet,
		})
	}

	return results, nil
}
