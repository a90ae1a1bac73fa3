package router

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"agentforge/internal/model"
)

// Catalog is an ordered, immutable list of routes.
// Index i of Routes() lines up with index i of the router's phrase embeddings.
type Catalog struct {
	routes []Route
}

// NewCatalog validates routes and copies them.
// Phrases must be unique after trimming, compared case-insensitively.
func NewCatalog(routes []Route) (*Catalog, error) {
	if len(routes) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(routes))
	out := make([]Route, 0, len(routes))
	for i, r := range routes {
		phrase := strings.TrimSpace(r.Phrase)
		if phrase == "" {
			return nil, fmt.Errorf("router: route %d has an empty phrase", i)
		}
		key := strings.ToLower(phrase)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePhrase, phrase)
		}
		seen[key] = struct{}{}

		category, err := model.ParseCategory(string(r.Category))
		if err != nil {
			return nil, fmt.Errorf("router: route %q: %w", phrase, err)
		}
		out = append(out, Route{Phrase: phrase, Category: category})
	}
	return &Catalog{routes: out}, nil
}

// DefaultCatalog returns the built-in reference phrases.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Route{
		{"optimize prompt", model.CategoryPromptOptimizer},
		{"improve prompt", model.CategoryPromptOptimizer},
		{"better prompt", model.CategoryPromptOptimizer},
		{"rewrite prompt", model.CategoryPromptOptimizer},

		{"resume", model.CategoryContentRewriter},
		{"cv", model.CategoryContentRewriter},
		{"linkedin", model.CategoryContentRewriter},
		{"job description", model.CategoryContentRewriter},
		{"tailor resume", model.CategoryContentRewriter},

		{"email", model.CategoryEmailPrioritizer},
		{"inbox", model.CategoryEmailPrioritizer},
		{"prioritize", model.CategoryEmailPrioritizer},
		{"urgent", model.CategoryEmailPrioritizer},
	})
	if err != nil {
		panic(err)
	}
	return c
}

type catalogFile struct {
	Routes []Route `yaml:"routes"`
}

// LoadCatalog reads a YAML file of the form
//
//	routes:
//	  - phrase: optimize prompt
//	    category: PromptOptimizer
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("router: read catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("router: parse catalog %s: %w", path, err)
	}
	return NewCatalog(f.Routes)
}

// Routes returns a copy of the entries in insertion order.
func (c *Catalog) Routes() []Route {
	out := make([]Route, len(c.routes))
	copy(out, c.routes)
	return out
}

// Len returns the number of routes.
func (c *Catalog) Len() int {
	return len(c.routes)
}

func (c *Catalog) phrases() []string {
	out := make([]string, len(c.routes))
	for i, r := range c.routes {
		out[i] = r.Phrase
	}
	return out
}
