package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/finiq/backend/internal/config"
	v1 "github.com/finiq/backend/internal/controllers/v1"
	"github.com/finiq/backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// BaseURL is the API URL all test requests are made against.
const BaseURL = "http://example.com"

// Config returns the configuration used for test routers.
func Config(t *testing.T) config.Config {
	u, err := url.Parse(BaseURL)
	require.Nil(t, err)

	return config.Config{
		APIURL:    *u,
		GinMode:   "test",
		LogFormat: "human",
		DataDir:   t.TempDir(),
	}
}

// Request is a helper method to simplify making a HTTP request for tests.
//
// The body can be a string, which is sent as is, or anything else, which is
// marshalled to JSON.
func Request(t *testing.T, co v1.Controller, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var byteBuffer *bytes.Buffer

	switch {
	case body == nil:
		byteBuffer = bytes.NewBuffer(nil)
	case reflect.TypeOf(body).Kind() == reflect.String:
		byteBuffer = bytes.NewBufferString(body.(string))
	default:
		byteStr, err := json.Marshal(body)
		if err != nil {
			assert.FailNow(t, "Request body could not be marshalled", err)
		}
		byteBuffer = bytes.NewBuffer(byteStr)
	}

	r, teardown, err := router.Config(Config(t))
	defer teardown()

	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	router.AttachRoutes(co, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, reqURL, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}
