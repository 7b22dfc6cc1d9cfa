// Package journal provides the use case behind the journal article page:
// fetching one article of the storefront's journal blog by handle.
package journal

import "errors"

// Sentinel errors for journal use case operations.
var (
	// ErrFetchArticle wraps every failure of the content lookup so the HTTP
	// boundary can tell upstream failures from programming errors.
	ErrFetchArticle = errors.New("fetch journal article")

	// ErrUnexpectedLookup indicates the repository returned neither Found
	// nor NotFound.
	ErrUnexpectedLookup = errors.New("unexpected article lookup result")
)
