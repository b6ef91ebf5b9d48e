package market

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// DefaultPageSize is the number of articles shown before loading more.
const DefaultPageSize = 5

// Fetcher returns news articles.
type Fetcher interface {
	Fetch(ctx context.Context) ([]Article, error)
}

// NewsCache keeps the articles of the last successful fetch.
type NewsCache struct {
	fetcher Fetcher

	mu        sync.RWMutex
	articles  []Article
	fetchedAt time.Time
}

func NewNewsCache(f Fetcher) *NewsCache {
	return &NewsCache{fetcher: f}
}

// Refresh fetches the articles. On failure, the previous articles are kept.
func (c *NewsCache) Refresh(ctx context.Context) error {
	articles, err := c.fetcher.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("refreshing news")
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.articles = articles
	c.fetchedAt = time.Now().In(time.UTC)
	log.Debug().Int("articles", len(articles)).Msg("news refreshed")

	return nil
}

// Page returns up to limit articles starting at offset, the total number of
// cached articles and the time of the last successful fetch.
func (c *NewsCache) Page(offset, limit int) ([]Article, int, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := len(c.articles)
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}

	end := min(offset+limit, total)
	page := slices.Clone(c.articles[offset:end])
	if page == nil {
		page = []Article{}
	}

	return page, total, c.fetchedAt
}
