package newsapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-reader/app/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestClient_TopHeadlines_RequestShape(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v2/top-headlines", r.URL.Path)
		gotQuery = map[string]string{
			"category": r.URL.Query().Get("category"),
			"country":  r.URL.Query().Get("country"),
			"pageSize": r.URL.Query().Get("pageSize"),
			"apiKey":   r.URL.Query().Get("apiKey"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","totalResults":0,"articles":[]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/v2/top-headlines", "secret", server.Client(), testLogger())
	_, err := client.TopHeadlines(context.Background(), domain.HeadlinesQuery{
		Category: domain.CategorySports,
		Country:  "GB",
		PageSize: 500,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"category": "sports",
		"country":  "gb",
		"pageSize": "100",
		"apiKey":   "secret",
	}, gotQuery)
}

func TestClient_TopHeadlines_Decode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"status":"ok",
			"totalResults":2,
			"articles":[
				{"title":"A","description":null,"url":"http://a","urlToImage":null,"publishedAt":"2024-03-05T10:00:00Z","source":{"id":null,"name":"Wire"}},
				{"title":"","url":"http://b"}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", nil, testLogger())
	got, err := client.TopHeadlines(context.Background(), domain.HeadlinesQuery{Category: domain.CategoryGeneral, Country: "us", PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, 2, got.TotalResults)
	require.Len(t, got.Articles, 2)

	first := got.Articles[0]
	require.NotNil(t, first.Title)
	assert.Equal(t, "A", *first.Title)
	assert.Nil(t, first.Description)
	assert.Nil(t, first.URLToImage)
	require.NotNil(t, first.SourceName)
	assert.Equal(t, "Wire", *first.SourceName)

	second := got.Articles[1]
	require.NotNil(t, second.Title)
	assert.Equal(t, "", *second.Title)
	assert.Nil(t, second.Description)
	assert.Nil(t, second.SourceName)
}

func TestClient_TopHeadlines_NotOKPayloadIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"bad key"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "k", nil, testLogger())
	got, err := client.TopHeadlines(context.Background(), domain.HeadlinesQuery{Category: domain.CategoryGeneral, Country: "us", PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, "error", got.Status)
	assert.Equal(t, 0, got.TotalResults)
	assert.Empty(t, got.Articles)
}

func TestClient_TopHeadlines_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr string
	}{
		{
			name: "non 2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr: "unexpected status 401",
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
			wantErr: "failed to decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, "k", nil, testLogger())
			got, err := client.TopHeadlines(context.Background(), domain.HeadlinesQuery{Category: domain.CategoryHealth, Country: "us", PageSize: 10})
			require.Error(t, err)
			assert.Nil(t, got)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestClient_TopHeadlines_TransportErrorHidesKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(baseURL, "very-secret-key", nil, testLogger())
	_, err := client.TopHeadlines(context.Background(), domain.HeadlinesQuery{Category: domain.CategoryScience, Country: "us", PageSize: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.NotContains(t, err.Error(), "very-secret-key")
}

func TestClient_HasAPIKey(t *testing.T) {
	assert.True(t, NewClient("http://x", "k", nil, testLogger()).HasAPIKey())
	assert.False(t, NewClient("http://x", "", nil, testLogger()).HasAPIKey())
}
