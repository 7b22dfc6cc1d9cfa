package storefront

// OperationArticleDetails names the article query in logs, spans and metrics.
const OperationArticleDetails = "ArticleDetails"

// ArticleDetailsQuery fetches one article of a blog by handle, localized
// through @inContext.
const ArticleDetailsQuery = `query ArticleDetails(
  $language: LanguageCode
  $blogHandle: String!
  $articleHandle: String!
) @inContext(language: $language) {
  blog(handle: $blogHandle) {
    articleByHandle(handle: $articleHandle) {
      title
      contentHtml
      publishedAt
      author: authorV2 {
        name
      }
      image {
        id
        altText
        url
        width
        height
      }
    }
  }
}
`
