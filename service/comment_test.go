package service

import (
	"testing"

	"github.com/diskusiapp/diskusi/model"
	"github.com/diskusiapp/diskusi/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentAwardsPoints(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	author := utils.TestCreateUser(t, db, "author")
	commenter := utils.TestCreateUser(t, db, "commenter")
	post := utils.TestCreatePost(t, db, author.Id, "hello")

	comment, err := svc.CreateComment(principalFor(commenter), post.Id, "nice post")
	require.NoError(t, err)
	require.Equal(t, "nice post", comment.Content)
	require.Equal(t, commenter.Id, comment.Author.Id)

	var fresh model.User
	db.First(&fresh, "id = ?", commenter.Id)
	require.Equal(t, PointsPerComment, fresh.Points)
}

func TestCreateCommentEmptyContentRejectedBeforePersistence(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	author := utils.TestCreateUser(t, db, "author")
	post := utils.TestCreatePost(t, db, author.Id, "hello")

	_, err := svc.CreateComment(principalFor(author), post.Id, "   ")
	require.True(t, errors.Is(err, ErrInvalid))

	var count int64
	db.Model(&model.Comment{}).Count(&count)
	require.Equal(t, int64(0), count)
}

func TestDeleteCommentAuthorOnly(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	author := utils.TestCreateUser(t, db, "author")
	other := utils.TestCreateUser(t, db, "other")
	post := utils.TestCreatePost(t, db, author.Id, "hello")

	comment, err := svc.CreateComment(principalFor(author), post.Id, "mine")
	require.NoError(t, err)

	// not even an admin may delete someone else's comment
	admin := Principal{UserID: other.Id, Role: model.RoleAdmin}
	require.True(t, errors.Is(svc.DeleteComment(admin, comment.Id), ErrForbidden))

	require.NoError(t, svc.DeleteComment(principalFor(author), comment.Id))
	comments, err := svc.ListComments(post.Id)
	require.NoError(t, err)
	require.Len(t, comments, 0)
}

func TestListCommentsOldestFirst(t *testing.T) {
	db, _ := utils.CreateTempDB(t)
	svc := New(db, nil, nil)

	author := utils.TestCreateUser(t, db, "author")
	post := utils.TestCreatePost(t, db, author.Id, "hello")

	first, err := svc.CreateComment(principalFor(author), post.Id, "first")
	require.NoError(t, err)
	second, err := svc.CreateComment(principalFor(author), post.Id, "second")
	require.NoError(t, err)

	comments, err := svc.ListComments(post.Id)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, first.Id, comments[0].Id)
	require.Equal(t, second.Id, comments[1].Id)
}
