// Package taxonomy holds the fixed fraud-category taxonomy and the compiled
// phrase matchers used to classify bulletin sentences.
package taxonomy

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Definition pairs a stable category identifier with its trigger phrases.
type Definition struct {
	ID      string
	Phrases []string
}

// Category is one fraud-type bucket with its compiled matcher.
type Category struct {
	ID      string
	Phrases []string
	matcher *ahocorasick.Matcher
}

// Matches reports whether any of the category's phrases occurs in text as a
// case-insensitive substring. Phrase boundaries are not word-aware: "ceo
// fraud" matches inside "the CEO fraud case".
func (c *Category) Matches(text string) bool {
	if c.matcher == nil {
		return false
	}
	return len(c.matcher.Match([]byte(strings.ToLower(text)))) > 0
}

// Catalog is the immutable set of categories, in definition order.
type Catalog struct {
	categories []Category
}

// Build compiles a catalog from definitions. A definition with no phrases
// yields a category that never matches.
func Build(defs []Definition) *Catalog {
	cats := make([]Category, 0, len(defs))
	for _, d := range defs {
		c := Category{ID: d.ID, Phrases: d.Phrases}
		if len(d.Phrases) > 0 {
			patterns := make([][]byte, len(d.Phrases))
			for i, p := range d.Phrases {
				patterns[i] = []byte(strings.ToLower(p))
			}
			c.matcher = ahocorasick.NewMatcher(patterns)
		}
		cats = append(cats, c)
	}
	return &Catalog{categories: cats}
}

// New compiles the default fraud taxonomy.
func New() *Catalog {
	return Build(Default)
}

// Categories returns the categories in definition order. Callers must not
// mutate the returned slice.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// IDs returns the category identifiers in definition order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.categories))
	for i := range c.categories {
		ids[i] = c.categories[i].ID
	}
	return ids
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}
