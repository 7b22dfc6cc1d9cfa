package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"journal-storefront/internal/domain/entity"
	"journal-storefront/internal/resilience/circuitbreaker"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleJSON = `{
  "data": {
    "blog": {
      "articleByHandle": {
        "title": "Hello",
        "contentHtml": "<p>Hi</p>",
        "publishedAt": "2022-06-20T00:00:00Z",
        "author": {"name": "Jane Doe"},
        "image": {
          "id": "gid://shopify/ArticleImage/1",
          "altText": null,
          "url": "https://cdn.shopify.com/s/files/hero.jpg",
          "width": 2400,
          "height": 1600
        }
      }
    }
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.StoreDomain = srv.URL
	cfg.AccessToken = "public-token"
	cfg.MaxBodySize = 4096
	require.NoError(t, cfg.Validate())

	return NewClient(cfg, opts...)
}

func TestClient_ArticleByHandle_Found(t *testing.T) {
	var got GraphQLRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/2022-07/graphql.json", r.URL.Path)
		assert.Equal(t, "public-token", r.Header.Get(AccessTokenHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_, _ = w.Write([]byte(articleJSON))
	})

	lookup, err := client.ArticleByHandle(context.Background(), "journal", "my-post", entity.Locale{Language: "en", Country: "us"})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(got.Query, "query ArticleDetails("))
	assert.Equal(t, OperationArticleDetails, got.OperationName)
	assert.Equal(t, map[string]interface{}{
		"blogHandle":    "journal",
		"articleHandle": "my-post",
		"language":      "EN",
	}, got.Variables)

	found, ok := lookup.(entity.Found)
	require.True(t, ok, "expected Found, got %T", lookup)

	want := entity.Article{
		Title:       "Hello",
		ContentHTML: "<p>Hi</p>",
		PublishedAt: time.Date(2022, time.June, 20, 0, 0, 0, 0, time.UTC),
		Author:      entity.Author{Name: "Jane Doe"},
		Image: &entity.Image{
			ID:     "gid://shopify/ArticleImage/1",
			URL:    "https://cdn.shopify.com/s/files/hero.jpg",
			Width:  2400,
			Height: 1600,
		},
	}
	if diff := cmp.Diff(want, found.Article); diff != "" {
		t.Errorf("article mismatch (-want +got):\n%s", diff)
	}
}

func TestClient_ArticleByHandle_NotFound(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "article is null", body: `{"data":{"blog":{"articleByHandle":null}}}`},
		{name: "blog is null", body: `{"data":{"blog":null}}`},
		{name: "data is null", body: `{"data":null}`},
		{name: "data is absent", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			lookup, err := client.ArticleByHandle(context.Background(), "journal", "missing", entity.DefaultLocale)
			require.NoError(t, err)
			assert.Equal(t, entity.NotFound{Handle: "missing"}, lookup)
		})
	}
}

func TestClient_ArticleByHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "graphql errors",
			status:  http.StatusOK,
			body:    `{"data":null,"errors":[{"message":"Throttled"}]}`,
			wantErr: ErrGraphQL,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `internal`,
			wantErr: ErrUnexpectedStatusCode,
		},
		{
			name:    "oversized body",
			status:  http.StatusOK,
			body:    `{"data":"` + strings.Repeat("x", 5000) + `"}`,
			wantErr: ErrResponseTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			lookup, err := client.ArticleByHandle(context.Background(), "journal", "my-post", entity.DefaultLocale)
			require.Error(t, err)
			assert.Nil(t, lookup)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}

func TestClient_StatusErrorCarriesCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	})

	_, err := client.ArticleByHandle(context.Background(), "journal", "my-post", entity.DefaultLocale)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestClient_MalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":`))
	})

	_, err := client.ArticleByHandle(context.Background(), "journal", "my-post", entity.DefaultLocale)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse response")
}

func TestClient_CircuitOpenFailsFast(t *testing.T) {
	var calls atomic.Int32

	cbConfig := circuitbreaker.DefaultConfig("storefront-test")
	cbConfig.MinRequests = 1
	cbConfig.FailureThreshold = 0.5
	cb := circuitbreaker.New(cbConfig)

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, WithCircuitBreaker(cb))

	_, err := client.ArticleByHandle(context.Background(), "journal", "a", entity.DefaultLocale)
	require.ErrorIs(t, err, ErrUnexpectedStatusCode)
	assert.True(t, client.IsCircuitOpen())

	_, err = client.ArticleByHandle(context.Background(), "journal", "a", entity.DefaultLocale)
	require.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GraphQLErrorsDoNotTripCircuit(t *testing.T) {
	cbConfig := circuitbreaker.DefaultConfig("storefront-test")
	cbConfig.MinRequests = 1
	cbConfig.FailureThreshold = 0.5

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"Field 'nope' doesn't exist"}]}`))
	}, WithCircuitBreaker(circuitbreaker.New(cbConfig)))

	for i := 0; i < 3; i++ {
		_, err := client.ArticleByHandle(context.Background(), "journal", "a", entity.DefaultLocale)
		require.ErrorIs(t, err, ErrGraphQL)
	}
	assert.False(t, client.IsCircuitOpen())
}

func TestClient_CanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(articleJSON))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ArticleByHandle(ctx, "journal", "my-post", entity.DefaultLocale)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_OmitsEmptyLanguage(t *testing.T) {
	var got GraphQLRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"data":{"blog":null}}`))
	})

	_, err := client.ArticleByHandle(context.Background(), "journal", "x", entity.Locale{})
	require.NoError(t, err)
	assert.NotContains(t, got.Variables, "language")
}
