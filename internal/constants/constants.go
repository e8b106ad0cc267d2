package constants

// Queue and task names.
const (
	QueueDefault      = "default"
	TaskContactNotify = "contact:notify"
)

// Sitemap change frequencies and weights.
const (
	SitemapFreqWeekly  = "weekly"
	SitemapFreqMonthly = "monthly"

	SitemapPriorityProduct = "0.8"
	SitemapPriorityBlog    = "0.6"
)

// PlaceholderProductImage is rendered when a promoted product row is missing.
const PlaceholderProductImage = "/static/images/product-placeholder.png"
