// Package taxonomy defines the fixed category vocabulary used to organize
// bookmarks.
//
// A Taxonomy is an ordered list of categories, and the order is part of the
// contract: when two categories accumulate identical scores, the one
// declared earlier wins. The taxonomy is built once at startup (Default or
// LoadFromFile) and passed explicitly to the classifier; there is no
// package-level mutable state.
package taxonomy

import (
	"fmt"
	"strings"
)

// Default pattern weights. Domain evidence is considered more reliable than
// text evidence, and a title hit more reliable than a path hit.
const (
	DefaultDomainWeight = 3
	DefaultTitleWeight  = 2
	DefaultPathWeight   = 1
)

// Fallback is the catch-all category. Every taxonomy contains it; New
// appends it when the caller's list does not.
const Fallback = "Other"

// Category is one taxonomy entry with the patterns and weights used during
// scoring.
type Category struct {
	// Name is the user-visible label, unique within a taxonomy.
	Name string `yaml:"name" json:"name"`

	// Description documents what belongs in the category.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Domains are substrings matched against the bookmark domain.
	Domains []string `yaml:"domains,omitempty" json:"domains,omitempty"`

	// Keywords are substrings matched against the case-folded title and
	// the URL path.
	Keywords []string `yaml:"keywords,omitempty" json:"keywords,omitempty"`

	// DomainWeight, TitleWeight and PathWeight override the default
	// per-hit scores when positive.
	DomainWeight int `yaml:"domain_weight,omitempty" json:"domain_weight,omitempty"`
	TitleWeight  int `yaml:"title_weight,omitempty" json:"title_weight,omitempty"`
	PathWeight   int `yaml:"path_weight,omitempty" json:"path_weight,omitempty"`
}

// SafeName returns the category name as a filesystem-safe directory name.
func (c Category) SafeName() string {
	return SafeName(c.Name)
}

// SafeName converts a category label to a filesystem-safe form,
// e.g. "AI & Machine Learning" -> "AI_and_Machine_Learning".
func SafeName(name string) string {
	s := strings.ReplaceAll(name, " & ", "_and_")
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "/", "_")
	return s
}

// Taxonomy is an immutable ordered category list.
type Taxonomy struct {
	categories []Category
	index      map[string]int
}

// New builds a taxonomy from an ordered category list. Patterns are
// lowercased, missing weights filled with defaults, and the Fallback
// category appended if absent. It returns an error for empty or duplicate
// names, non-positive explicit weights, or a title weight below the path
// weight.
func New(categories []Category) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("taxonomy requires at least one category")
	}

	t := &Taxonomy{
		categories: make([]Category, 0, len(categories)+1),
		index:      make(map[string]int, len(categories)+1),
	}

	for _, c := range categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("category name must not be empty")
		}
		if _, dup := t.index[c.Name]; dup {
			return nil, fmt.Errorf("duplicate category %q", c.Name)
		}

		if c.DomainWeight == 0 {
			c.DomainWeight = DefaultDomainWeight
		}
		if c.TitleWeight == 0 {
			c.TitleWeight = DefaultTitleWeight
		}
		if c.PathWeight == 0 {
			c.PathWeight = DefaultPathWeight
		}
		if c.DomainWeight < 0 || c.TitleWeight < 0 || c.PathWeight < 0 {
			return nil, fmt.Errorf("category %q has a negative weight", c.Name)
		}
		if c.TitleWeight < c.PathWeight {
			return nil, fmt.Errorf("category %q: title weight (%d) must be at least path weight (%d)",
				c.Name, c.TitleWeight, c.PathWeight)
		}

		c.Domains = lowerAll(c.Domains)
		c.Keywords = lowerAll(c.Keywords)

		t.index[c.Name] = len(t.categories)
		t.categories = append(t.categories, c)
	}

	if _, ok := t.index[Fallback]; !ok {
		t.index[Fallback] = len(t.categories)
		t.categories = append(t.categories, Category{
			Name:         Fallback,
			Description:  "Bookmarks that do not fit any other category",
			DomainWeight: DefaultDomainWeight,
			TitleWeight:  DefaultTitleWeight,
			PathWeight:   DefaultPathWeight,
		})
	}

	return t, nil
}

// MustNew builds a taxonomy, panicking on invalid input. Use for
// known-good tables.
func MustNew(categories []Category) *Taxonomy {
	t, err := New(categories)
	if err != nil {
		panic(err)
	}
	return t
}

// Categories returns the ordered category list as a copy.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, len(t.categories))
	copy(out, t.categories)
	return out
}

// Names returns the ordered category names.
func (t *Taxonomy) Names() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Contains reports whether name is a category in this taxonomy.
func (t *Taxonomy) Contains(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of categories, including the fallback.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}

func lowerAll(patterns []string) []string {
	if len(patterns) == 0 {
		return nil
	}
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = strings.ToLower(p)
	}
	return out
}
