package usecase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"

	"storerank/internal/config/configs"
	"storerank/internal/core/domain"
)

const seoDescriptionLen = 160

// ImageVariant is a resized rendition served by the CDN.
type ImageVariant struct {
	Name  string
	Width int
}

// DefaultImageVariants are attached to every ranked product.
var DefaultImageVariants = []ImageVariant{
	{Name: "thumbnail", Width: 150},
	{Name: "small", Width: 300},
	{Name: "medium", Width: 600},
	{Name: "large", Width: 1200},
}

// Decorator projects a product into its display form. It performs no data
// access.
type Decorator struct {
	base        *url.URL
	placeholder string
	siteName    string
	variants    []ImageVariant
}

// NewDecorator validates the media configuration.
func NewDecorator(cfg configs.Media) (*Decorator, error) {
	base, err := url.Parse(cfg.CDNBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse cdn base url: %w", err)
	}
	if !base.IsAbs() {
		return nil, fmt.Errorf("cdn base url %q must be absolute", cfg.CDNBaseURL)
	}
	return &Decorator{
		base:        base,
		placeholder: cfg.PlaceholderURL,
		siteName:    cfg.SiteName,
		variants:    DefaultImageVariants,
	}, nil
}

func (d *Decorator) Decorate(p domain.Product, sponsored bool) domain.DecoratedProduct {
	primary := d.primaryImage(p)
	return domain.DecoratedProduct{
		ID:              p.ID,
		BusinessID:      p.BusinessID,
		Title:           p.Title,
		Slug:            productSlug(p),
		Brand:           p.Brand,
		Category:        p.Category,
		Description:     p.Description,
		Price:           p.Price,
		Rating:          p.Rating,
		PopularityScore: p.PopularityScore,
		SponsoredScore:  p.SponsoredScore,
		Sponsored:       sponsored,
		PrimaryImage:    primary,
		ImageVariants:   d.imageVariants(primary),
		SEOTitle:        d.seoTitle(p),
		SEODescription:  seoDescription(p),
		SEOKeywords:     seoKeywords(p),
	}
}

func (d *Decorator) primaryImage(p domain.Product) string {
	for _, img := range p.Images {
		if strings.TrimSpace(img) != "" {
			return d.resolve(img)
		}
	}
	if strings.TrimSpace(p.ImageURL) != "" {
		return d.resolve(p.ImageURL)
	}
	return d.placeholder
}

func (d *Decorator) resolve(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return d.placeholder
	}
	if u.IsAbs() {
		return u.String()
	}
	return d.base.ResolveReference(u).String()
}

func (d *Decorator) imageVariants(primary string) map[string]string {
	out := make(map[string]string, len(d.variants))
	u, err := url.Parse(primary)
	if err != nil || primary == "" {
		return out
	}
	for _, v := range d.variants {
		vu := *u
		q := vu.Query()
		q.Set("w", strconv.Itoa(v.Width))
		q.Set("fm", "webp")
		q.Set("q", "80")
		vu.RawQuery = q.Encode()
		out[v.Name] = vu.String()
	}
	return out
}

func (d *Decorator) seoTitle(p domain.Product) string {
	if t := strings.TrimSpace(p.SEOTitle); t != "" {
		return t
	}
	if d.siteName == "" {
		return p.Title
	}
	return p.Title + " | " + d.siteName
}

func seoDescription(p domain.Product) string {
	if desc := strings.TrimSpace(p.SEODescription); desc != "" {
		return desc
	}
	desc := strings.Join(strings.Fields(p.Description), " ")
	if utf8.RuneCountInString(desc) <= seoDescriptionLen {
		return desc
	}
	runes := []rune(desc)
	return strings.TrimSpace(string(runes[:seoDescriptionLen-3])) + "..."
}

func seoKeywords(p domain.Product) []string {
	if len(p.SEOKeywords) > 0 {
		return p.SEOKeywords
	}
	out := make([]string, 0, 2)
	for _, k := range []string{p.Category, p.Brand} {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func productSlug(p domain.Product) string {
	id := strconv.FormatInt(p.ID, 10)
	s := slug.Make(p.Title)
	if s == "" {
		return id
	}
	return s + "-" + id
}
