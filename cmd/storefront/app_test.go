package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"journal-storefront/internal/config"
	"journal-storefront/internal/infra/storefront"
	pkgconfig "journal-storefront/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helloArticle = `{"data":{"blog":{"articleByHandle":{
  "title":"Hello",
  "contentHtml":"<p>Hi <strong>there</strong></p>",
  "publishedAt":"2022-06-20T00:00:00Z",
  "author":{"name":"Jane Doe"},
  "image":{"id":"gid://shopify/ArticleImage/1","altText":"Hero","url":"https://cdn.shopify.com/s/files/hero.jpg","width":2400,"height":1600}
}}}}`

// fakeAPI answers ArticleDetails by handle: "hello" is found, "boom" fails
// with 500, anything else is missing.
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]any `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		assert.Equal(t, "journal", req.Variables["blogHandle"])

		w.Header().Set("Content-Type", "application/json")
		switch req.Variables["articleHandle"] {
		case "hello":
			_, _ = io.WriteString(w, helloArticle)
		case "boom":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"errors":"internal"}`)
		default:
			_, _ = io.WriteString(w, `{"data":{"blog":{"articleByHandle":null}}}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testApp(t *testing.T) *app {
	t.Helper()
	srv := fakeAPI(t)

	sfCfg := storefront.DefaultConfig()
	sfCfg.StoreDomain = srv.URL
	sfCfg.AccessToken = "public-token"
	require.NoError(t, sfCfg.Validate())

	shop := config.DefaultShopConfig()
	shop.SupportedLocales = []string{"en-US", "fr-CA"}

	a, err := assemble(slog.New(slog.NewTextHandler(io.Discard, nil)), &shop, sfCfg)
	require.NoError(t, err)
	return a
}

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	cspCfg := &pkgconfig.CSPConfig{
		Enabled:      true,
		ImageSources: []string{"https://cdn.shopify.com"},
		StyleSources: []string{"https://fonts.googleapis.com"},
		FontSources:  []string{"https://fonts.gstatic.com"},
	}
	return buildHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), testApp(t), cspCfg, "test")
}

func TestBuildHandler_JournalRoutes(t *testing.T) {
	handler := testHandler(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{name: "found", path: "/journal/hello", wantStatus: http.StatusOK, wantBody: "<h1"},
		{name: "not found", path: "/journal/missing", wantStatus: http.StatusNotFound, wantBody: "<div>Article not found</div>"},
		{name: "empty handle", path: "/journal/", wantStatus: http.StatusNotFound, wantBody: "<div>Article not found</div>"},
		{name: "upstream failure", path: "/journal/boom", wantStatus: http.StatusBadGateway, wantBody: "502 Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			assert.Equal(t, "public, max-age=3600, stale-while-revalidate=82800", rr.Header().Get("Cache-Control"))
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
			assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "https://cdn.shopify.com")
		})
	}
}

func TestBuildHandler_NotFoundBodyIsExact(t *testing.T) {
	rr := httptest.NewRecorder()
	testHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/journal/missing", nil))

	assert.Equal(t, "<div>Article not found</div>", rr.Body.String())
}

func TestBuildHandler_LocaleQuery(t *testing.T) {
	rr := httptest.NewRecorder()
	testHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/journal/hello?locale=fr-CA", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `lang="fr-CA"`)
}

func TestBuildHandler_OperationalRoutes(t *testing.T) {
	handler := testHandler(t)

	for _, path := range []string{"/live", "/ready", "/health", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "default-src 'none'")
		})
	}
}

func TestBuildHandler_MethodNotAllowed(t *testing.T) {
	rr := httptest.NewRecorder()
	testHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/journal/hello", strings.NewReader("x")))

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestServe_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), ln, testHandler(t), "test")
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/live")
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunRender(t *testing.T) {
	a := testApp(t)

	tests := []struct {
		name       string
		handle     string
		locale     string
		wantStatus string
		wantBody   string
	}{
		{name: "found", handle: "hello", wantStatus: "Status: 200", wantBody: "Jane Doe"},
		{name: "found with locale", handle: "hello", locale: "fr-CA", wantStatus: "Status: 200", wantBody: `lang="fr-CA"`},
		{name: "not found", handle: "missing", wantStatus: "Status: 404", wantBody: "<div>Article not found</div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := runRender(context.Background(), a, tt.handle, tt.locale, &stdout, &stderr)
			require.NoError(t, err)

			assert.Contains(t, stderr.String(), "Cache-Control: public, max-age=3600, stale-while-revalidate=82800")
			assert.Contains(t, stderr.String(), tt.wantStatus)
			assert.Contains(t, stdout.String(), tt.wantBody)
		})
	}
}

func TestRunRender_UpstreamErrorStillDeclaresPolicy(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runRender(context.Background(), testApp(t), "boom", "", &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Cache-Control: public, max-age=3600")
	assert.Empty(t, stdout.String())
}

func TestRunRender_UnsupportedLocale(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runRender(context.Background(), testApp(t), "hello", "zz-ZZ", &stdout, &stderr)

	assert.ErrorIs(t, err, ErrUnsupportedLocale)
}

func TestRootCmd_RenderRequiresHandle(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"render"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handle")
}
