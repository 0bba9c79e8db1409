package ai

import (
	"fmt"
	"strings"
)

// MaxCategoriesPerPost caps how many category suggestions a classification
// may return for one post.
const MaxCategoriesPerPost = 3

// BuildClassifyPrompt embeds the live category list so the model can only
// pick from names that exist. Unknown names in the reply are dropped later
// by FilterCategoryNames anyway.
func BuildClassifyPrompt(content string, categoryNames []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a content classifier for a discussion platform.\n")
	fmt.Fprintf(&b, "Available categories: %s\n", strings.Join(categoryNames, ", "))
	fmt.Fprintf(&b, "Pick at most %d categories that best match the post below.\n", MaxCategoriesPerPost)
	fmt.Fprintf(&b, "Reply with ONLY a JSON array of category names, e.g. [\"Politik\",\"Ekonomi\"]. No prose.\n\n")
	fmt.Fprintf(&b, "Post:\n%s\n", content)
	return b.String()
}

// BuildTopicsPrompt asks the model for count trending-topic records tagged
// with categories from the live list.
func BuildTopicsPrompt(count int, categoryNames []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an editor for a discussion platform.\n")
	fmt.Fprintf(&b, "Generate %d plausible trending discussion topics.\n", count)
	fmt.Fprintf(&b, "Each topic must use one of these categories: %s\n", strings.Join(categoryNames, ", "))
	fmt.Fprintf(&b, "Reply with ONLY a JSON array of objects with fields ")
	fmt.Fprintf(&b, "\"title\", \"category\" and \"description\". No prose, no markdown.\n")
	return b.String()
}
