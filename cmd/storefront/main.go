// Command storefront serves the journal article pages of a Shopify
// storefront, rendered on the server from the Storefront API.
//
// Usage:
//
//	storefront serve [--addr :8080] [--config storefront.yaml]
//	storefront render --handle spring-lookbook [--locale fr-CA]
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
