package v1_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	v1 "github.com/finiq/backend/internal/controllers/v1"
	"github.com/finiq/backend/internal/market"
	"github.com/finiq/backend/test"
	"github.com/stretchr/testify/assert"
)

type articleFetcher []market.Article

func (f articleFetcher) Fetch(context.Context) ([]market.Article, error) {
	return f, nil
}

func (suite *TestSuiteStandard) useNews(n int) {
	articles := make(articleFetcher, 0, n)
	for i := range n {
		articles = append(articles, market.Article{
			Title: fmt.Sprintf("Article %d", i),
			URL:   fmt.Sprintf("https://example.com/%d", i),
		})
	}

	suite.controller.News = market.NewNewsCache(articles)
	suite.Require().Nil(suite.controller.News.Refresh(context.Background()))
}

func (suite *TestSuiteStandard) TestMarketNewsDisabled() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/market/news", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusServiceUnavailable)
	suite.Assert().Equal("financial news are not configured on this server", test.DecodeError(suite.T(), recorder.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestMarketNewsNotFetched() {
	suite.controller.News = market.NewNewsCache(articleFetcher{})

	recorder := suite.request(http.MethodGet, "http://example.com/v1/market/news", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.NewsListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)
	suite.Assert().Nil(response.FetchedAt)
	suite.Assert().Equal(0, response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestMarketNewsPagination() {
	suite.useNews(12)

	tests := []struct {
		name   string
		query  string
		count  int
		offset uint
		limit  int
		first  string
	}{
		{"Default", "", 5, 0, 5, "Article 0"},
		{"Load more", "?offset=5", 5, 5, 5, "Article 5"},
		{"Last page", "?offset=10", 2, 10, 5, "Article 10"},
		{"Limit", "?limit=3&offset=1", 3, 1, 3, "Article 1"},
		{"Beyond the end", "?offset=20", 0, 20, 5, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.controller, http.MethodGet, "http://example.com/v1/market/news"+tt.query, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response v1.NewsListResponse
			test.DecodeResponse(t, &recorder, &response)

			assert.Len(t, response.Data, tt.count)
			assert.NotNil(t, response.FetchedAt)
			assert.Equal(t, v1.Pagination{Count: tt.count, Offset: tt.offset, Limit: tt.limit, Total: 12}, *response.Pagination)

			if tt.first != "" {
				assert.Equal(t, tt.first, response.Data[0].Title)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMarketNewsInvalidQuery() {
	suite.useNews(1)

	recorder := suite.request(http.MethodGet, "http://example.com/v1/market/news?offset=-1", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMarketNewsFromAPI() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": [{"title": "Sensex ends higher", "url": "https://example.com/sensex", "published_at": "2024-05-02T10:15:00.000000Z", "source": "example.com"}]}`))
	}))
	defer ts.Close()

	suite.controller.News = market.NewNewsCache(market.NewNewsClient(ts.URL, "token", time.Second))
	suite.Require().Nil(suite.controller.News.Refresh(context.Background()))

	recorder := suite.request(http.MethodGet, "http://example.com/v1/market/news", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.NewsListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(market.Article{
		Title:       "Sensex ends higher",
		URL:         "https://example.com/sensex",
		PublishedAt: "2024-05-02T10:15:00.000000Z",
		Source:      "example.com",
	}, response.Data[0])
}

func (suite *TestSuiteStandard) TestMarketIndices() {
	recorder := suite.request(http.MethodGet, "http://example.com/v1/market/indices", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IndexListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 5)
	suite.Assert().Equal(market.Point{Timestamp: "09:00", Nifty: 18200, Sensex: 61000}, response.Data[0])
	suite.Assert().Equal("10:00", response.Data[4].Timestamp)
}

func (suite *TestSuiteStandard) TestMarketIndicesDisabled() {
	suite.controller.Feed = nil

	recorder := suite.request(http.MethodGet, "http://example.com/v1/market/indices", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusServiceUnavailable)
}

func (suite *TestSuiteStandard) TestMarketOptions() {
	for _, path := range []string{"news", "indices"} {
		recorder := suite.request(http.MethodOptions, "http://example.com/v1/market/"+path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
	}
}
