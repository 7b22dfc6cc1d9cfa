package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordArticleRender(t *testing.T) {
	before := testutil.ToFloat64(JournalArticleRendersTotal.WithLabelValues(RenderNotFound))

	RecordArticleRender(RenderNotFound)
	RecordArticleRender(RenderNotFound)

	after := testutil.ToFloat64(JournalArticleRendersTotal.WithLabelValues(RenderNotFound))
	assert.Equal(t, before+2, after)
}

func TestRecordStorefrontQuery(t *testing.T) {
	before := testutil.CollectAndCount(StorefrontQueryDuration)

	RecordStorefrontQuery("ArticleDetails", "success", 120*time.Millisecond)
	RecordStorefrontQuery("ArticleDetails", "error", 3*time.Second)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(StorefrontQueryDuration), before)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(StorefrontQueryDuration), 2)
}

func TestRecordStorefrontError(t *testing.T) {
	counter := StorefrontQueryErrors.WithLabelValues("ArticleDetails", "graphql")
	before := testutil.ToFloat64(counter)

	RecordStorefrontError("ArticleDetails", "graphql")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestSetStorefrontCircuitOpen(t *testing.T) {
	SetStorefrontCircuitOpen(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(StorefrontCircuitOpen))

	SetStorefrontCircuitOpen(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(StorefrontCircuitOpen))
}

func TestRecordHTTPRequest(t *testing.T) {
	counter := HTTPRequestsTotal.WithLabelValues("GET", "/journal/:handle", "200")
	before := testutil.ToFloat64(counter)

	RecordHTTPRequest("GET", "/journal/:handle", "200", 15*time.Millisecond, 2048)
	RecordHTTPRequest("GET", "/journal/:handle", "200", 5*time.Millisecond, 0)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
