package ai

import (
	"fmt"
	"testing"

	"github.com/diskusiapp/diskusi/model"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testCategories() []model.Category {
	return []model.Category{
		{Id: "cat-politik", Name: "Politik"},
		{Id: "cat-ekonomi", Name: "Ekonomi"},
	}
}

func TestFilterCategoryNamesDropsUnknown(t *testing.T) {
	// model suggested one known and one unknown category
	ids := FilterCategoryNames([]string{"Politik", "Hiburan"}, testCategories(), MaxCategoriesPerPost)
	require.Equal(t, []string{"cat-politik"}, ids)
}

func TestFilterCategoryNamesCaseInsensitiveAndDeduped(t *testing.T) {
	ids := FilterCategoryNames([]string{" politik ", "POLITIK", "ekonomi"}, testCategories(), MaxCategoriesPerPost)
	if diff := cmp.Diff([]string{"cat-politik", "cat-ekonomi"}, ids); diff != "" {
		t.Errorf("unexpected ids (-want +got):\n%s", diff)
	}
}

func TestFilterCategoryNamesCapped(t *testing.T) {
	categories := []model.Category{}
	names := []string{}
	for i := 0; i < 5; i++ {
		categories = append(categories, model.Category{Id: fmt.Sprintf("id-%d", i), Name: fmt.Sprintf("Cat%d", i)})
		names = append(names, fmt.Sprintf("Cat%d", i))
	}
	ids := FilterCategoryNames(names, categories, MaxCategoriesPerPost)
	require.Len(t, ids, MaxCategoriesPerPost)
}

func TestFilterTopicDraftsDropsWholeTopic(t *testing.T) {
	drafts := []TopicDraft{}
	for i := 0; i < 15; i++ {
		category := "Politik"
		if i < 2 {
			category = "DoesNotExist"
		}
		drafts = append(drafts, TopicDraft{
			Title:    fmt.Sprintf("topic %d", i),
			Category: category,
		})
	}

	kept := FilterTopicDrafts(drafts, testCategories())
	require.Len(t, kept, 13)
	for _, d := range kept {
		require.Equal(t, "cat-politik", d.CategoryID)
	}
}
