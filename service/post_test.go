package service

import (
	"testing"

	"github.com/diskusiapp/diskusi/model"
	"github.com/diskusiapp/diskusi/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCreatePostWithCategories(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	author := utils.TestCreateUser(t, db, "author")
	politik := utils.TestCreateCategory(t, db, "Politik")

	post, err := svc.CreatePost(principalFor(author), CreatePostInput{
		Content:     "berita hari ini",
		ImageUrls:   []string{"https://img.example.com/1.png"},
		CategoryIDs: []string{politik.Id},
	})
	require.NoError(t, err)
	require.Equal(t, author.Id, post.Author.Id)
	require.Len(t, post.Categories, 1)
	require.Equal(t, "Politik", post.Categories[0].Name)

	var fresh model.User
	db.First(&fresh, "id = ?", author.Id)
	require.Equal(t, PointsPerPost, fresh.Points)
}

func TestCreatePostUnknownCategory(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	author := utils.TestCreateUser(t, db, "author")
	_, err := svc.CreatePost(principalFor(author), CreatePostInput{
		Content:     "x",
		CategoryIDs: []string{"no-such-category"},
	})
	require.True(t, errors.Is(err, ErrInvalid))

	var count int64
	db.Model(&model.Post{}).Count(&count)
	require.Equal(t, int64(0), count)
}

func TestListPostsNewestFirstWithStats(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	author := utils.TestCreateUser(t, db, "author")
	viewer := utils.TestCreateUser(t, db, "viewer")
	older := utils.TestCreatePost(t, db, author.Id, "older")
	newer := utils.TestCreatePost(t, db, author.Id, "newer")

	_, err := svc.ToggleLike(principalFor(viewer), older.Id)
	require.NoError(t, err)

	views, err := svc.ListPosts(viewer.Id, ListPostsQuery{})
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, newer.Id, views[0].Id)
	require.False(t, views[0].IsLiked)
	require.Equal(t, older.Id, views[1].Id)
	require.True(t, views[1].IsLiked)
	require.Equal(t, int64(1), views[1].LikeCount)
}

func TestListPostsByCategory(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	author := utils.TestCreateUser(t, db, "author")
	politik := utils.TestCreateCategory(t, db, "Politik")
	ekonomi := utils.TestCreateCategory(t, db, "Ekonomi")

	tagged, err := svc.CreatePost(principalFor(author), CreatePostInput{
		Content: "politik", CategoryIDs: []string{politik.Id}})
	require.NoError(t, err)
	_, err = svc.CreatePost(principalFor(author), CreatePostInput{
		Content: "ekonomi", CategoryIDs: []string{ekonomi.Id}})
	require.NoError(t, err)

	views, err := svc.ListPosts("", ListPostsQuery{CategoryID: politik.Id})
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, tagged.Id, views[0].Id)
}

func TestUpdatePostOwnerOnly(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	author := utils.TestCreateUser(t, db, "author")
	other := utils.TestCreateUser(t, db, "other")
	post := utils.TestCreatePost(t, db, author.Id, "original")

	content := "edited"
	_, err := svc.UpdatePost(principalFor(other), post.Id, UpdatePostInput{Content: &content})
	require.True(t, errors.Is(err, ErrForbidden))

	updated, err := svc.UpdatePost(principalFor(author), post.Id, UpdatePostInput{Content: &content})
	require.NoError(t, err)
	require.Equal(t, "edited", updated.Content)
}

func TestDeletePostOwnerOrAdmin(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	author := utils.TestCreateUser(t, db, "author")
	other := utils.TestCreateUser(t, db, "other")
	post := utils.TestCreatePost(t, db, author.Id, "hello")

	require.True(t, errors.Is(svc.DeletePost(principalFor(other), post.Id), ErrForbidden))

	admin := Principal{UserID: other.Id, Role: model.RoleAdmin}
	require.NoError(t, svc.DeletePost(admin, post.Id))

	_, err := svc.GetPost("", post.Id)
	require.True(t, errors.Is(err, ErrNotFound))
}
