// Package checklist provides categorized review-item checklists per
// (format, level) pair, parsed from embedded structured text, plus the
// concept-matching heuristic used to score generated prompts against
// checklist items.
package checklist

import "strings"

// Category is one named grouping of checklist items.
type Category struct {
	Label string   `json:"label"`
	Items []string `json:"items"`
}

// Checklist is the parsed, cached checklist for one (format, level, version).
type Checklist struct {
	Title      string     `json:"title"`
	Categories []Category `json:"categories"`
}

// Flatten returns every item across all categories in source order.
func (c *Checklist) Flatten() []string {
	var items []string
	for _, cat := range c.Categories {
		items = append(items, cat.Items...)
	}
	return items
}

// ByCategory returns the items of the first category whose label contains
// the given substring, case-insensitively. Returns nil when nothing
// matches.
func (c *Checklist) ByCategory(substr string) []string {
	needle := strings.ToLower(substr)
	for _, cat := range c.Categories {
		if strings.Contains(strings.ToLower(cat.Label), needle) {
			return cat.Items
		}
	}
	return nil
}

// Labels returns the category labels in source order.
func (c *Checklist) Labels() []string {
	labels := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		labels = append(labels, cat.Label)
	}
	return labels
}
