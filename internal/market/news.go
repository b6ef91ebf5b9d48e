// Package market provides the data for the market panel: financial news from
// a third-party API and a simulated feed of index values.
package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrNewsUnavailable = errors.New("financial news are unavailable")

// Article is a single news item.
type Article struct {
	Title       string `json:"title" example:"Sensex ends higher as banks rally"`
	URL         string `json:"url" example:"https://example.com/markets/sensex-banks"`
	PublishedAt string `json:"publishedAt" example:"2024-05-02T10:15:00.000000Z"`
	Source      string `json:"source" example:"example.com"`
	Description string `json:"description,omitempty" example:"Banking stocks led the gains."`
}

// NewsClient queries the news API for Indian finance news in English.
type NewsClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewNewsClient(baseURL, token string, timeout time.Duration) *NewsClient {
	return &NewsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

type newsResponse struct {
	Data []struct {
		Title       string `json:"title"`
		URL         string `json:"url"`
		PublishedAt string `json:"published_at"`
		Source      string `json:"source"`
		Description string `json:"description"`
	} `json:"data"`
}

// Fetch returns the current articles. A response without data is an empty
// list, not an error.
func (c *NewsClient) Fetch(ctx context.Context) ([]Article, error) {
	query := url.Values{}
	query.Set("api_token", c.token)
	query.Set("language", "en")
	query.Set("country", "in")
	query.Set("sectors", "finance")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/news/all?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("could not create news request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNewsUnavailable, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrNewsUnavailable, res.StatusCode)
	}

	var body newsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNewsUnavailable, err)
	}

	articles := make([]Article, 0, len(body.Data))
	for _, a := range body.Data {
		articles = append(articles, Article{
			Title:       a.Title,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      a.Source,
			Description: a.Description,
		})
	}

	return articles, nil
}
