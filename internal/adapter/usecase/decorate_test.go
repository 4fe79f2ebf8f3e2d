package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storerank/internal/config/configs"
	"storerank/internal/core/domain"
)

func testMedia() configs.Media {
	return configs.Media{
		CDNBaseURL:     "https://cdn.example.com",
		PlaceholderURL: "https://cdn.example.com/static/placeholder.png",
		SiteName:       "Shop",
	}
}

func newTestDecorator(t *testing.T) *Decorator {
	t.Helper()
	d, err := NewDecorator(testMedia())
	require.NoError(t, err)
	return d
}

func TestDecoratePrimaryImageResolution(t *testing.T) {
	d := newTestDecorator(t)

	tests := []struct {
		name string
		p    domain.Product
		want string
	}{
		{"gallery first", domain.Product{Images: []string{" ", "/img/a.jpg"}, ImageURL: "/img/b.jpg"}, "https://cdn.example.com/img/a.jpg"},
		{"fallback image url", domain.Product{ImageURL: "img/b.jpg"}, "https://cdn.example.com/img/b.jpg"},
		{"absolute kept", domain.Product{ImageURL: "https://img.other.net/c.png"}, "https://img.other.net/c.png"},
		{"placeholder", domain.Product{}, "https://cdn.example.com/static/placeholder.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Decorate(tt.p, false)
			assert.Equal(t, tt.want, got.PrimaryImage)
		})
	}
}

func TestDecorateVariants(t *testing.T) {
	d := newTestDecorator(t)
	got := d.Decorate(domain.Product{ImageURL: "/img/a.jpg?v=2"}, false)

	require.Len(t, got.ImageVariants, len(DefaultImageVariants))
	assert.Equal(t, "https://cdn.example.com/img/a.jpg?fm=webp&q=80&v=2&w=150", got.ImageVariants["thumbnail"])
	assert.True(t, strings.HasSuffix(got.ImageVariants["large"], "w=1200"))
}

func TestDecorateSEOFallbacks(t *testing.T) {
	d := newTestDecorator(t)
	p := domain.Product{
		ID:          42,
		Title:       "Noise Cancelling Headphones",
		Brand:       "Acme",
		Category:    "Electronics",
		Description: strings.Repeat("great sound ", 30),
	}

	got := d.Decorate(p, true)
	assert.True(t, got.Sponsored)
	assert.Equal(t, "noise-cancelling-headphones-42", got.Slug)
	assert.Equal(t, "Noise Cancelling Headphones | Shop", got.SEOTitle)
	assert.Equal(t, seoDescriptionLen, len([]rune(got.SEODescription)))
	assert.True(t, strings.HasSuffix(got.SEODescription, "..."))
	assert.Equal(t, []string{"Electronics", "Acme"}, got.SEOKeywords)
}

func TestDecorateSEOOverrides(t *testing.T) {
	d := newTestDecorator(t)
	p := domain.Product{
		ID:             1,
		Title:          "Lamp",
		SEOTitle:       "Best Lamp",
		SEODescription: "Bright.",
		SEOKeywords:    []string{"lamp", "light"},
	}

	got := d.Decorate(p, false)
	assert.Equal(t, "Best Lamp", got.SEOTitle)
	assert.Equal(t, "Bright.", got.SEODescription)
	assert.Equal(t, []string{"lamp", "light"}, got.SEOKeywords)
}

func TestDecorateEmptyTitleSlug(t *testing.T) {
	d := newTestDecorator(t)
	assert.Equal(t, "9", d.Decorate(domain.Product{ID: 9, Title: "!!!"}, false).Slug)
}

func TestNewDecoratorRejectsRelativeBase(t *testing.T) {
	cfg := testMedia()
	cfg.CDNBaseURL = "/cdn"
	_, err := NewDecorator(cfg)
	assert.Error(t, err)
}
