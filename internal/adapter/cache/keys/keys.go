// Package keys builds ranking cache keys. Every key starts with the
// configured namespace so one prefix invalidation drops all ranking
// variants.
package keys

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
)

const maxReadableLen = 80

// Builder derives cache keys for the three query shapes.
type Builder struct {
	Namespace string
}

func New(namespace string) Builder {
	return Builder{Namespace: namespace}
}

// Global is the key of the homepage ranking.
func (b Builder) Global() string {
	return b.Namespace + "global"
}

// Category keys on the exact category value. The hash keeps values that
// sanitize to the same text apart.
func (b Builder) Category(category string) string {
	return fmt.Sprintf("%scategory:%s:%016x", b.Namespace, readable(category), xxhash.Sum64String(category))
}

// Search keys on the normalized query, so queries differing only in case
// or whitespace share an entry.
func (b Builder) Search(query string) string {
	q := NormalizeQuery(query)
	return fmt.Sprintf("%ssearch:%s:%016x", b.Namespace, readable(q), xxhash.Sum64String(q))
}

// NormalizeQuery lowercases the query and collapses whitespace runs.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

func readable(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for _, r := range s {
		var out rune
		switch {
		case unicode.IsSpace(r):
			out = '_'
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-'):
			out = r
		default:
			out = '-'
		}
		if (out == '_' || out == '-') && out == prev {
			continue
		}
		b.WriteRune(out)
		prev = out
		if b.Len() >= maxReadableLen {
			break
		}
	}
	return b.String()
}
