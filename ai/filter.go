package ai

import (
	"strings"

	"github.com/diskusiapp/diskusi/model"
)

// FilterCategoryNames maps model-returned category names to category ids.
// Matching is case-insensitive, duplicates collapse, unknown names are
// silently dropped, and the result is capped at max. The system never
// invents new categories.
func FilterCategoryNames(names []string, categories []model.Category, max int) []string {
	byName := make(map[string]string, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Name)] = c.Id
	}

	seen := make(map[string]bool)
	ids := []string{}
	for _, name := range names {
		id, ok := byName[strings.ToLower(strings.TrimSpace(name))]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
		if len(ids) >= max {
			break
		}
	}
	return ids
}

// KeptDraft is a TopicDraft whose category name resolved to a real category.
type KeptDraft struct {
	TopicDraft
	CategoryID string
}

// FilterTopicDrafts drops every draft whose category does not
// case-insensitively match an existing category. Unlike classification, a
// mismatch here discards the whole topic, not just the tag.
func FilterTopicDrafts(drafts []TopicDraft, categories []model.Category) []KeptDraft {
	byName := make(map[string]string, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Name)] = c.Id
	}

	kept := []KeptDraft{}
	for _, d := range drafts {
		id, ok := byName[strings.ToLower(strings.TrimSpace(d.Category))]
		if !ok {
			continue
		}
		kept = append(kept, KeptDraft{TopicDraft: d, CategoryID: id})
	}
	return kept
}
