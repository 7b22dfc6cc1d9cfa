// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the storefront.
//
// Example usage:
//
//	logger := logging.NewLogger()
//	logger.Info("server starting", slog.String("addr", ":8080"))
//
//	func (h ArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
//	    logger := logging.WithRequestID(r.Context(), h.Logger)
//	    logger.Debug("rendering article")
//	}
package logging
