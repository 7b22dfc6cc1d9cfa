// Package resilience provides fault tolerance patterns for calls to external services.
//
// The circuitbreaker subpackage wraps github.com/sony/gobreaker and is used to
// protect the Shopify Storefront API client so that an upstream outage fails
// fast instead of tying up request goroutines.
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.StorefrontAPIConfig())
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
package resilience
