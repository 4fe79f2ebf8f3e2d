package configs

// Media configures how ranked products are decorated for display.
type Media struct {
	// CDNBaseURL is prepended to relative image paths.
	CDNBaseURL     string `env:"CDN_BASE_URL" envDefault:"https://cdn.example.com"`
	PlaceholderURL string `env:"PLACEHOLDER_URL" envDefault:"https://cdn.example.com/static/placeholder.png"`
	SiteName       string `env:"SITE_NAME" envDefault:"Storefront"`
}
