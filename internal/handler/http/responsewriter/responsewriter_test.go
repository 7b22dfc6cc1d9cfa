package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	require.NotNil(t, wrapped)
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.Equal(t, 0, wrapped.BytesWritten())
	assert.False(t, wrapped.Written())
}

func TestWrap_Idempotent(t *testing.T) {
	wrapped := Wrap(httptest.NewRecorder())
	assert.Same(t, wrapped, Wrap(wrapped))
}

func TestResponseWriter_WriteHeader(t *testing.T) {
	for _, code := range []int{http.StatusOK, http.StatusNotFound, http.StatusBadGateway, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(code), func(t *testing.T) {
			rec := httptest.NewRecorder()
			wrapped := Wrap(rec)

			wrapped.WriteHeader(code)

			assert.Equal(t, code, wrapped.StatusCode())
			assert.Equal(t, code, rec.Code)
			assert.True(t, wrapped.Written())
		})
	}
}

func TestResponseWriter_WriteHeader_MultipleCallsIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.WriteHeader(http.StatusNotFound)
	wrapped.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusNotFound, wrapped.StatusCode())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseWriter_Write_ImplicitStatusCode(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	n, err := wrapped.Write([]byte("<div>Article not found</div>"))
	require.NoError(t, err)

	assert.Equal(t, 28, n)
	assert.Equal(t, http.StatusOK, wrapped.StatusCode())
	assert.True(t, wrapped.Written())
}

func TestResponseWriter_Write_MultipleWrites(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	_, _ = wrapped.Write([]byte("<!doctype html>"))
	_, _ = wrapped.Write([]byte("<html></html>"))

	assert.Equal(t, 28, wrapped.BytesWritten())
	assert.Equal(t, "<!doctype html><html></html>", rec.Body.String())
}

func TestResponseWriter_Flush(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)

	wrapped.Flush()

	assert.True(t, rec.Flushed)
	assert.True(t, wrapped.Written())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Equal(t, rec, Wrap(rec).Unwrap())
}

func TestResponseWriter_WithHandler(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<div>Article not found</div>"))
	})

	rec := httptest.NewRecorder()
	wrapped := Wrap(rec)
	handler.ServeHTTP(wrapped, httptest.NewRequest(http.MethodGet, "/journal/missing", nil))

	assert.Equal(t, http.StatusNotFound, wrapped.StatusCode())
	assert.Equal(t, 28, wrapped.BytesWritten())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}
