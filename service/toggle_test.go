package service

import (
	"testing"

	"github.com/diskusiapp/diskusi/model"
	"github.com/diskusiapp/diskusi/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeRoundTrip(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	user := utils.TestCreateUser(t, db, "liker")
	author := utils.TestCreateUser(t, db, "author")
	post := utils.TestCreatePost(t, db, author.Id, "hello")

	// false -> true -> false under serialized calls
	active, err := svc.ToggleLike(principalFor(user), post.Id)
	require.NoError(t, err)
	require.True(t, active)

	view, err := svc.GetPost(user.Id, post.Id)
	require.NoError(t, err)
	require.True(t, view.IsLiked)
	require.Equal(t, int64(1), view.LikeCount)

	active, err = svc.ToggleLike(principalFor(user), post.Id)
	require.NoError(t, err)
	require.False(t, active)

	view, err = svc.GetPost(user.Id, post.Id)
	require.NoError(t, err)
	require.False(t, view.IsLiked)
	require.Equal(t, int64(0), view.LikeCount)

	// off means gone: no historical row survives the toggle
	var count int64
	db.Model(&model.PostLike{}).Count(&count)
	require.Equal(t, int64(0), count)
}

func TestToggleBookmarkIndependentOfLike(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	user := utils.TestCreateUser(t, db, "reader")
	author := utils.TestCreateUser(t, db, "author")
	post := utils.TestCreatePost(t, db, author.Id, "hello")

	active, err := svc.ToggleBookmark(principalFor(user), post.Id)
	require.NoError(t, err)
	require.True(t, active)

	view, err := svc.GetPost(user.Id, post.Id)
	require.NoError(t, err)
	require.True(t, view.IsBookmarked)
	require.False(t, view.IsLiked)
}

func TestTogglePostNotFound(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	user := utils.TestCreateUser(t, db, "liker")
	_, err := svc.ToggleLike(principalFor(user), "no-such-post")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestAnonymousViewerSeesNoExistenceBits(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	user := utils.TestCreateUser(t, db, "liker")
	author := utils.TestCreateUser(t, db, "author")
	post := utils.TestCreatePost(t, db, author.Id, "hello")

	_, err := svc.ToggleLike(principalFor(user), post.Id)
	require.NoError(t, err)

	view, err := svc.GetPost("", post.Id)
	require.NoError(t, err)
	require.False(t, view.IsLiked)
	require.Equal(t, int64(1), view.LikeCount)
}
