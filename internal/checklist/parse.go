package checklist

import (
	"bufio"
	"strings"
)

// Parse reads the lightweight checklist text format:
//
//	# title        — single top-level title, ignored beyond Title
//	## category    — starts a new category, resetting the item accumulator
//	- [ ] item     — appends an unchecked item to the current category
//
// Blank lines are ignored. A category that accumulates zero items before
// the next category header (or end of input) is dropped. Duplicate
// category labels resolve last-wins: the later category replaces the
// earlier one at its new position.
func Parse(source string) *Checklist {
	cl := &Checklist{}

	var current *Category
	flush := func() {
		if current == nil || len(current.Items) == 0 {
			current = nil
			return
		}
		// last-wins on duplicate labels
		for i, cat := range cl.Categories {
			if cat.Label == current.Label {
				cl.Categories = append(cl.Categories[:i], cl.Categories[i+1:]...)
				break
			}
		}
		cl.Categories = append(cl.Categories, *current)
		current = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(source))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "## "):
			flush()
			current = &Category{Label: strings.TrimSpace(strings.TrimPrefix(line, "## "))}
		case strings.HasPrefix(line, "# "):
			if cl.Title == "" {
				cl.Title = strings.TrimSpace(strings.TrimPrefix(line, "# "))
			}
		case strings.HasPrefix(line, "- [ ] "):
			if current != nil {
				item := strings.TrimSpace(strings.TrimPrefix(line, "- [ ] "))
				if item != "" {
					current.Items = append(current.Items, item)
				}
			}
		}
	}
	flush()

	return cl
}
