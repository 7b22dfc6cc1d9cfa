// Package view renders the storefront's server-side HTML with gomponents.
//
// Components mirror the storefront theme: Layout wraps every page,
// PageHeader and Section structure the content, Image emits responsive
// images served from the platform CDN, and Seo produces the document
// metadata. ArticlePage composes them for a journal post.
package view
