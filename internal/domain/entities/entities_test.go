package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPostID(t *testing.T) {
	tests := []struct {
		name  string
		ids   []int
		want  int
	}{
		{"empty collection", nil, 1},
		{"single post", []int{1}, 2},
		{"contiguous", []int{1, 2, 3}, 4},
		{"non-contiguous", []int{1, 3, 11}, 12},
		{"unordered", []int{7, 2, 5}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := make([]Post, 0, len(tt.ids))
			for _, id := range tt.ids {
				posts = append(posts, Post{ID: id})
			}
			assert.Equal(t, tt.want, NextPostID(posts))
		})
	}
}

func TestFilterBoard(t *testing.T) {
	posts := []Post{
		{ID: 1, Category: "root", Language: "english"},
		{ID: 2, Category: "root", Language: "chinese"},
		{ID: 3, Category: "stem", Language: "english"},
		{ID: 4, Category: "root", Language: "english"},
	}

	filtered := FilterBoard(posts, "root", "english", 9)
	require.Len(t, filtered, 2)

	// Exact matches only, order preserved
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 4, filtered[1].ID)

	// Idempotent: filtering an already-filtered result is identical
	assert.Equal(t, filtered, FilterBoard(filtered, "root", "english", 9))
}

func TestFilterBoard_Cap(t *testing.T) {
	posts := make([]Post, 12)
	for i := range posts {
		posts[i] = Post{ID: i + 1, Category: "root", Language: "english"}
	}

	filtered := FilterBoard(posts, "root", "english", 9)
	require.Len(t, filtered, 9)
	assert.Equal(t, 1, filtered[0].ID)
	assert.Equal(t, 9, filtered[8].ID)
}

func TestFilterBoard_NoMatches(t *testing.T) {
	posts := []Post{{ID: 1, Category: "root", Language: "english"}}

	filtered := FilterBoard(posts, "fruit", "korean", 9)
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}

func TestSiteContent_LabelFallback(t *testing.T) {
	content := DefaultSiteContent()

	assert.Equal(t, "The Root", content.CategoryLabel("root"))
	assert.Equal(t, "English", content.LanguageLabel("english"))

	// Unknown keys fall back to the raw key, not an error
	assert.Equal(t, "mystery", content.CategoryLabel("mystery"))
	assert.Equal(t, "klingon", content.LanguageLabel("klingon"))
}

func TestSiteContent_BoardDescription(t *testing.T) {
	content := DefaultSiteContent()

	assert.NotEmpty(t, content.BoardDescription("root", "english"))
	assert.Empty(t, content.BoardDescription("root", "klingon"))
	assert.Empty(t, content.BoardDescription("mystery", "english"))
}

func TestSiteContent_HasRequiredSections(t *testing.T) {
	content := DefaultSiteContent()
	assert.True(t, content.HasRequiredSections())

	missing := *content
	missing.Verses = nil
	assert.False(t, missing.HasRequiredSections())

	missing = *content
	missing.Resources = nil
	assert.False(t, missing.HasRequiredSections())

	missing = *content
	missing.About = About{}
	assert.False(t, missing.HasRequiredSections())

	var nilContent *SiteContent
	assert.False(t, nilContent.HasRequiredSections())
}

func TestDefaultDocuments_AreFreshCopies(t *testing.T) {
	a := DefaultSiteContent()
	a.Labels.Categories["root"] = "mutated"
	b := DefaultSiteContent()
	assert.Equal(t, "The Root", b.Labels.Categories["root"])

	posts := DefaultPosts()
	posts[0].Title = "mutated"
	assert.NotEqual(t, "mutated", DefaultPosts()[0].Title)
}
