package respond

import (
	"regexp"
)

var (
	// Shopify Admin/partner tokens: shpat_, shpca_, shppa_, shpss_ followed by hex.
	shopifyTokenPattern = regexp.MustCompile(`shp(at|ca|pa|ss)_[a-fA-F0-9]{16,}`)

	// Access-token headers or parameters echoed in error text.
	accessTokenPattern = regexp.MustCompile(`(?i)(access[-_]?token["']?\s*[:=]\s*["']?)[^\s"',;&]+`)

	// Bearer credentials.
	bearerPattern = regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9\-._~+/]+=*`)

	// Credentials embedded in URLs.
	urlPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)
)

// SanitizeError returns err's message with tokens and credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	// Most specific pattern first.
	msg = shopifyTokenPattern.ReplaceAllString(msg, "shp${1}_****")
	msg = accessTokenPattern.ReplaceAllString(msg, "${1}****")
	msg = bearerPattern.ReplaceAllString(msg, "${1}****")
	msg = urlPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
